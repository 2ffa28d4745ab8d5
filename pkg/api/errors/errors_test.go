package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dialdesk/dialdesk/pkg/domain"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestValidationError(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/leads")
	err := ValidationError(c, errors.New("field 'name' is required"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation_error", parseBody(t, rec).Error)
}

func TestInternalError_NoInternalDetails(t *testing.T) {
	internalMsg := "pq: relation \"leads\" does not exist"
	c, rec := newContext(http.MethodGet, "/api/leads")
	_ = InternalError(c, errors.New(internalMsg))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), internalMsg)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestFromDomain_NotFound(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/leads/99")
	_ = FromDomain(c, domain.NewNotFoundError("lead"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", parseBody(t, rec).Error)
}

func TestFromDomain_Forbidden(t *testing.T) {
	c, rec := newContext(http.MethodPut, "/api/leads/1")
	_ = FromDomain(c, domain.NewForbiddenError("record is locked"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	resp := parseBody(t, rec)
	assert.Equal(t, "forbidden", resp.Error)
	assert.Equal(t, "record is locked", resp.Message)
}

func TestFromDomain_ValidationKeepsMessage(t *testing.T) {
	c, rec := newContext(http.MethodPut, "/api/leads/1")
	_ = FromDomain(c, domain.NewValidationError("unknown status: Closed Won"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unknown status: Closed Won", parseBody(t, rec).Message)
}

func TestFromDomain_InternalHidesCause(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/leads")
	_ = FromDomain(c, domain.NewInternalError(errors.New("dial tcp: connection refused")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "dial tcp")
}

func TestFromDomain_PlainErrorIsInternal(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/leads")
	_ = FromDomain(c, errors.New("some bug"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
