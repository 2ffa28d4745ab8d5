package handlers

import (
	"net/http"
	"strconv"

	"github.com/dialdesk/dialdesk/pkg/activity"
	apierrors "github.com/dialdesk/dialdesk/pkg/api/errors"
	apimiddleware "github.com/dialdesk/dialdesk/pkg/api/middleware"
	"github.com/dialdesk/dialdesk/pkg/leads"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/labstack/echo/v4"
)

// ActivityHandler handles activity trail endpoints
type ActivityHandler struct {
	activityService *activity.Service
	leadService     *leads.Service
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *activity.Service, leadService *leads.Service) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		leadService:     leadService,
	}
}

// ForLead returns the activity trail of a lead, newest first. Access to
// the trail follows access to the lead itself.
func (h *ActivityHandler) ForLead(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	leadID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	if _, err := h.leadService.Get(c.Request().Context(), actor, leadID); err != nil {
		return apierrors.FromDomain(c, err)
	}

	entries, err := h.activityService.ForLead(c.Request().Context(), leadID)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	out := make([]models.ActivityResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.ActivityResponse{
			ID:             e.ID,
			LeadID:         e.LeadID,
			UserID:         e.UserID,
			Action:         string(e.Action),
			PreviousStatus: e.PreviousStatus,
			NewStatus:      e.NewStatus,
			Details:        e.Details,
			CreatedAt:      e.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}
