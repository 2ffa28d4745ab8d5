package handlers

import (
	"net/http"
	"strconv"

	"github.com/dialdesk/dialdesk/ent"
	apierrors "github.com/dialdesk/dialdesk/pkg/api/errors"
	apimiddleware "github.com/dialdesk/dialdesk/pkg/api/middleware"
	"github.com/dialdesk/dialdesk/pkg/leads"
	"github.com/dialdesk/dialdesk/pkg/metrics"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/dialdesk/dialdesk/pkg/policy"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// LeadHandler handles lead endpoints
type LeadHandler struct {
	leadService *leads.Service
	metrics     *metrics.Metrics
	validator   *validator.Validate
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *leads.Service, m *metrics.Metrics) *LeadHandler {
	return &LeadHandler{
		leadService: leadService,
		metrics:     m,
		validator:   validator.New(),
	}
}

// ListForProject returns the visible leads of a project
func (h *LeadHandler) ListForProject(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	projectID, err := strconv.Atoi(c.QueryParam("projectId"))
	if err != nil || projectID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "projectId query parameter is required",
		})
	}

	rows, err := h.leadService.ListForProject(c.Request().Context(), actor, projectID)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	out := make([]models.LeadResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, toLeadResponse(l))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns a single lead
func (h *LeadHandler) Get(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	l, err := h.leadService.Get(c.Request().Context(), actor, id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}
	return c.JSON(http.StatusOK, toLeadResponse(l))
}

// Create inserts a new lead
func (h *LeadHandler) Create(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.CreateLeadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	l, err := h.leadService.Create(c.Request().Context(), actor, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	h.metrics.RecordLeadCreated()
	return c.JSON(http.StatusCreated, toLeadResponse(l))
}

// Update applies a partial update to a lead. Fields the actor is not
// authorized to change come back in rejectedFields instead of failing
// the request.
func (h *LeadHandler) Update(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	var req policy.UpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	before, err := h.leadService.Get(c.Request().Context(), actor, id)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	updated, rejected, err := h.leadService.Update(c.Request().Context(), actor, id, req)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	h.metrics.RecordFieldsRejected(len(rejected))
	if updated.Status != before.Status {
		h.metrics.RecordStatusChange(updated.Status)
	}

	return c.JSON(http.StatusOK, models.UpdateLeadResponse{
		Lead:           toLeadResponse(updated),
		RejectedFields: rejected,
	})
}

// Delete removes a lead
func (h *LeadHandler) Delete(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	if err := h.leadService.Delete(c.Request().Context(), actor, id); err != nil {
		return apierrors.FromDomain(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toLeadResponse(l *ent.Lead) models.LeadResponse {
	return models.LeadResponse{
		ID:              l.ID,
		Name:            l.Name,
		Company:         l.Company,
		Email:           l.Email,
		Phone:           l.Phone,
		Mobile:          l.Mobile,
		CorporatePhone:  l.CorporatePhone,
		Title:           l.Title,
		Industry:        l.Industry,
		Revenue:         l.Revenue,
		Employees:       l.Employees,
		State:           l.State,
		LinkedIn:        l.Linkedin,
		Website:         l.Website,
		Notes:           l.Notes,
		Status:          l.Status,
		NextFollowUp:    l.NextFollowUp,
		DealValue:       l.DealValue,
		Source:          l.Source,
		ProjectID:       l.ProjectID,
		WorkspaceID:     l.WorkspaceID,
		AssignedAgentID: l.AssignedAgentID,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}
