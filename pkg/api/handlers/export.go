package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/dialdesk/dialdesk/pkg/api/errors"
	apimiddleware "github.com/dialdesk/dialdesk/pkg/api/middleware"
	"github.com/dialdesk/dialdesk/pkg/export"
	"github.com/dialdesk/dialdesk/pkg/metrics"
	"github.com/labstack/echo/v4"
)

// ExportHandler handles lead export endpoints
type ExportHandler struct {
	exportService *export.Service
	metrics       *metrics.Metrics
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *export.Service, m *metrics.Metrics) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		metrics:       m,
	}
}

// ExportProject streams the actor-visible leads of a project as a file
// download. Format defaults to csv; xlsx is also supported.
func (h *ExportHandler) ExportProject(c echo.Context) error {
	actor, ok := apimiddleware.ActorFromContext(c)
	if !ok {
		return apierrors.UnauthorizedError(c)
	}

	projectID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	format := c.QueryParam("format")
	if format == "" {
		format = export.FormatCSV
	}

	result, err := h.exportService.ExportProject(c.Request().Context(), actor, projectID, format)
	if err != nil {
		return apierrors.FromDomain(c, err)
	}

	h.metrics.RecordExportCreated(result.Format)
	return c.Attachment(result.FilePath, result.Filename)
}

// Formats lists the supported export formats
func (h *ExportHandler) Formats(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]string{
		"formats": {export.FormatCSV, export.FormatXLSX},
	})
}
