package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/pkg/auth"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/dialdesk/dialdesk/pkg/policy"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "actor"

// JWTMiddleware authenticates a request and resolves the acting user
// into a policy actor stored on the echo context. Role and capabilities
// are read fresh from the database on every request, so a demoted user
// loses access without waiting for token expiry.
func JWTMiddleware(secret string, db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "missing_token",
					Message: "Authorization header is required",
				})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token_format",
					Message: "Authorization header must be 'Bearer {token}'",
				})
			}

			claims, err := auth.ValidateJWT(parts[1], secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token",
					Message: err.Error(),
				})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
			defer cancel()

			userData, err := db.User.Get(ctx, claims.UserID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "user_not_found",
					Message: "User account not found",
				})
			}

			actor := policy.Actor{
				ID:           userData.ID,
				Role:         policy.Role(userData.Role),
				WorkspaceID:  userData.WorkspaceID,
				Capabilities: policy.NewCapabilitySet(userData.Permissions),
			}

			c.Set("user_id", userData.ID)
			c.Set("user_email", userData.Email)
			c.Set(actorContextKey, actor)

			return next(c)
		}
	}
}

// ActorFromContext returns the policy actor resolved by JWTMiddleware.
func ActorFromContext(c echo.Context) (policy.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(policy.Actor)
	return actor, ok
}
