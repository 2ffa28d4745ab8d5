package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/dialdesk/dialdesk/config"
	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/user"
	"github.com/dialdesk/dialdesk/pkg/api/errors"
	"github.com/dialdesk/dialdesk/pkg/auth"
	"github.com/dialdesk/dialdesk/pkg/metrics"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db        *ent.Client
	config    *config.Config
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, cfg *config.Config, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		db:        db,
		config:    cfg,
		metrics:   m,
		validator: validator.New(),
	}
}

// Login authenticates a user and returns a JWT
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	userData, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Only(ctx)
	if err != nil {
		h.metrics.RecordLoginAttempt(false)
		// Same response for unknown email and bad password.
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	if !auth.CheckPassword(userData.PasswordHash, req.Password) {
		h.metrics.RecordLoginAttempt(false)
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	token, err := auth.GenerateJWT(
		userData.ID,
		userData.Email,
		string(userData.Role),
		h.config.JWTSecret,
		h.config.JWTExpirationHours,
	)
	if err != nil {
		return errors.InternalError(c, err)
	}

	h.metrics.RecordLoginAttempt(true)

	return c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  toUserResponse(userData),
	})
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return errors.UnauthorizedError(c)
	}

	userData, err := h.db.User.Get(c.Request().Context(), userID)
	if err != nil {
		return errors.NotFoundError(c)
	}

	return c.JSON(http.StatusOK, toUserResponse(userData))
}

func toUserResponse(u *ent.User) models.UserResponse {
	return models.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        string(u.Role),
		Permissions: u.Permissions,
		WorkspaceID: u.WorkspaceID,
		CreatedAt:   u.CreatedAt,
	}
}
