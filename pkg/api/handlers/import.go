package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/dialdesk/dialdesk/pkg/api/errors"
	apimiddleware "github.com/dialdesk/dialdesk/pkg/api/middleware"
	"github.com/dialdesk/dialdesk/pkg/importer"
	"github.com/dialdesk/dialdesk/pkg/metrics"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ImportHandler handles bulk lead import endpoints
type ImportHandler struct {
	importService *importer.Service
	metrics       *metrics.Metrics
	validator     *validator.Validate
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService *importer.Service, m *metrics.Metrics) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		metrics:       m,
		validator:     validator.New(),
	}
}

// ImportJSON imports leads from a parsed JSON payload of rows
func (h *ImportHandler) ImportJSON(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	var req models.ImportRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	result, err := h.importService.Import(c.Request().Context(), actor, req.ProjectID, req.Leads)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	h.metrics.RecordImport(result.Count)
	return c.JSON(http.StatusCreated, result)
}

// ImportCSV imports leads from an uploaded CSV file
func (h *ImportHandler) ImportCSV(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	projectID, err := strconv.Atoi(c.FormValue("projectId"))
	if err != nil || projectID <= 0 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "projectId form field is required",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "file form field is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apierrors.InternalError(c, err)
	}
	defer file.Close()

	result, err := h.importService.ImportCSV(c.Request().Context(), actor, projectID, file)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	h.metrics.RecordImport(result.Count)
	return c.JSON(http.StatusCreated, result)
}
