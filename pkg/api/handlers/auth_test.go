package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dialdesk/dialdesk/config"
	"github.com/dialdesk/dialdesk/ent"
	"github.com/dialdesk/dialdesk/ent/enttest"
	"github.com/dialdesk/dialdesk/ent/user"
	"github.com/dialdesk/dialdesk/pkg/auth"
	"github.com/dialdesk/dialdesk/pkg/metrics"
	"github.com/dialdesk/dialdesk/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Prometheus collectors register globally, so the package shares one set.
var testMetrics = metrics.New()

func setupAuthTest(t *testing.T) (*AuthHandler, *ent.Client) {
	t.Helper()

	dbClient := enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { dbClient.Close() })

	handler := &AuthHandler{
		db: dbClient,
		config: &config.Config{
			JWTSecret:          "test-secret-key",
			JWTExpirationHours: 24,
		},
		metrics:   testMetrics,
		validator: validator.New(),
	}
	return handler, dbClient
}

func seedLoginUser(t *testing.T, client *ent.Client, email, password string) *ent.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	u, err := client.User.Create().
		SetEmail(email).
		SetName("Test User").
		SetPasswordHash(hash).
		SetRole(user.RoleAgent).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func TestLogin_Success(t *testing.T) {
	handler, client := setupAuthTest(t)
	seedLoginUser(t, client, "agent@example.com", "correct-horse")

	e := echo.New()
	body := `{"email":"agent@example.com","password":"correct-horse"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "agent@example.com", resp.User.Email)
	assert.Equal(t, "AGENT", resp.User.Role)

	claims, err := auth.ValidateJWT(resp.Token, "test-secret-key")
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	handler, client := setupAuthTest(t)
	seedLoginUser(t, client, "agent@example.com", "correct-horse")

	e := echo.New()
	body := `{"email":"agent@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_credentials", resp.Error)
}

// Unknown emails must be indistinguishable from bad passwords.
func TestLogin_UnknownEmailSameResponse(t *testing.T) {
	handler, client := setupAuthTest(t)
	seedLoginUser(t, client, "agent@example.com", "correct-horse")

	e := echo.New()

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		require.NoError(t, handler.Login(e.NewContext(req, rec)))
		return rec
	}

	unknown := login(`{"email":"nobody@example.com","password":"whatever"}`)
	badPass := login(`{"email":"agent@example.com","password":"whatever"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, badPass.Code, unknown.Code)
	assert.JSONEq(t, badPass.Body.String(), unknown.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	handler, _ := setupAuthTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"agent@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMe_ReturnsAuthenticatedUser(t *testing.T) {
	handler, client := setupAuthTest(t)
	u := seedLoginUser(t, client, "agent@example.com", "correct-horse")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", u.ID)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, u.ID, resp.ID)
	assert.Equal(t, "agent@example.com", resp.Email)
}

func TestMe_NoUserInContext(t *testing.T) {
	handler, _ := setupAuthTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
