package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/user"
	apierrors "github.com/dialdesk/dialdesk/pkg/api/errors"
	apimiddleware "github.com/dialdesk/dialdesk/pkg/api/middleware"
	"github.com/dialdesk/dialdesk/pkg/auth"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/dialdesk/dialdesk/pkg/policy"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// UserHandler handles user management endpoints
type UserHandler struct {
	db        *ent.Client
	validator *validator.Validate
}

// NewUserHandler creates a new user handler
func NewUserHandler(db *ent.Client) *UserHandler {
	return &UserHandler{
		db:        db,
		validator: validator.New(),
	}
}

// List returns users visible to the actor: all for super admins, the
// workspace's for admins.
func (h *UserHandler) List(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	query := h.db.User.Query().Order(ent.Asc(user.FieldName))
	switch actor.Role {
	case policy.RoleSuperAdmin:
		// Unscoped.
	case policy.RoleAdmin:
		if actor.WorkspaceID == nil {
			return c.JSON(http.StatusOK, []models.UserResponse{})
		}
		query = query.Where(user.WorkspaceIDEQ(*actor.WorkspaceID))
	default:
		return apierrors.ForbiddenError(c, "Admin access required")
	}

	users, err := query.All(c.Request().Context())
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	out := make([]models.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return c.JSON(http.StatusOK, out)
}

// Create registers a new user. Admins can only create agents inside
// their own workspace; super admins can create anyone anywhere.
func (h *UserHandler) Create(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	workspaceID := req.WorkspaceID
	if actor.Role != policy.RoleSuperAdmin {
		if req.Role != "AGENT" {
			return apierrors.ForbiddenError(c, "Only super admins can create admin accounts")
		}
		workspaceID = actor.WorkspaceID
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	exists, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	if exists {
		return apierrors.ConflictError(c, "User with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	create := h.db.User.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetPasswordHash(hashedPassword).
		SetRole(user.Role(req.Role)).
		SetPermissions(req.Permissions)
	if workspaceID != nil {
		create.SetWorkspaceID(*workspaceID)
	}

	newUser, err := create.Save(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, toUserResponse(newUser))
}

// Update changes a user's name, password, role, permissions, or
// workspace. Role and workspace changes are super admin only.
func (h *UserHandler) Update(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	if (req.Role != nil || req.WorkspaceID != nil) && actor.Role != policy.RoleSuperAdmin {
		return apierrors.ForbiddenError(c, "Only super admins can change roles or workspaces")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	target, err := h.db.User.Get(ctx, id)
	if err != nil {
		return apierrors.NotFoundError(c)
	}
	if actor.Role == policy.RoleAdmin {
		if actor.WorkspaceID == nil || target.WorkspaceID == nil || *target.WorkspaceID != *actor.WorkspaceID {
			return apierrors.ForbiddenError(c, "User is outside your workspace")
		}
	}

	update := h.db.User.UpdateOneID(id)
	if req.Name != nil {
		update.SetName(*req.Name)
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return apierrors.InternalError(c, err)
		}
		update.SetPasswordHash(hashed)
	}
	if req.Role != nil {
		update.SetRole(user.Role(*req.Role))
	}
	if req.Permissions != nil {
		update.SetPermissions(*req.Permissions)
	}
	if req.WorkspaceID != nil {
		update.SetWorkspaceID(*req.WorkspaceID)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// Delete removes a user account. Super admin only; self-deletion is
// rejected.
func (h *UserHandler) Delete(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}
	if actor.Role != policy.RoleSuperAdmin {
		return apierrors.ForbiddenError(c, "Only super admins can delete users")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}
	if id == actor.ID {
		return apierrors.ForbiddenError(c, "You cannot delete your own account")
	}

	if err := h.db.User.DeleteOneID(id).Exec(c.Request().Context()); err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c)
		}
		return apierrors.InternalError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
