package middleware

import (
	"net/http"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/user"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/labstack/echo/v4"
)

// RequireAdmin middleware ensures the user has admin or super admin role
func RequireAdmin(db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authentication required",
				})
			}

			userData, err := db.User.Get(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "user_not_found",
					Message: "User not found",
				})
			}

			if userData.Role != user.RoleAdmin && userData.Role != user.RoleSuperAdmin {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   "forbidden",
					Message: "Admin access required",
				})
			}

			c.Set("user_role", string(userData.Role))

			return next(c)
		}
	}
}
