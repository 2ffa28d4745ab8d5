package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/dialdesk/dialdesk/pkg/api/errors"
	apimiddleware "github.com/dialdesk/dialdesk/pkg/api/middleware"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/dialdesk/dialdesk/pkg/projects"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ProjectHandler handles project endpoints
type ProjectHandler struct {
	projectService *projects.Service
	validator      *validator.Validate
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *projects.Service) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
		validator:      validator.New(),
	}
}

// List returns the projects visible to the actor
func (h *ProjectHandler) List(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	out, err := h.projectService.List(c.Request().Context(), actor)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns a single project
func (h *ProjectHandler) Get(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	proj, err := h.projectService.Get(c.Request().Context(), actor, id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	resp := models.ProjectResponse{
		ID:          proj.ID,
		Name:        proj.Name,
		Description: proj.Description,
		WorkspaceID: proj.WorkspaceID,
		CreatedAt:   proj.CreatedAt,
	}
	for _, agent := range proj.Edges.Agents {
		resp.Agents = append(resp.Agents, models.UserResponse{
			ID:    agent.ID,
			Name:  agent.Name,
			Email: agent.Email,
			Role:  string(agent.Role),
		})
	}
	return c.JSON(http.StatusOK, resp)
}

// Create creates a new project
func (h *ProjectHandler) Create(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.CreateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	proj, err := h.projectService.Create(c.Request().Context(), actor, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}
	return c.JSON(http.StatusCreated, models.ProjectResponse{
		ID:          proj.ID,
		Name:        proj.Name,
		Description: proj.Description,
		WorkspaceID: proj.WorkspaceID,
		CreatedAt:   proj.CreatedAt,
	})
}

// Update modifies a project
func (h *ProjectHandler) Update(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	var req models.UpdateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	proj, err := h.projectService.Update(c.Request().Context(), actor, id, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, models.ProjectResponse{
		ID:          proj.ID,
		Name:        proj.Name,
		Description: proj.Description,
		WorkspaceID: proj.WorkspaceID,
		CreatedAt:   proj.CreatedAt,
	})
}

// Delete removes a project and its leads
func (h *ProjectHandler) Delete(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	if err := h.projectService.Delete(c.Request().Context(), actor, id); err != nil {
		return apierrors.FromDomain(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
