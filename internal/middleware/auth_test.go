package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackpot/internal/auth"
	apperrors "blackpot/internal/errors"
	"blackpot/internal/model"
)

const testSecret = "test-secret"

func newAuthTestServer() (*echo.Echo, *auth.JWTService) {
	e := echo.New()
	jwtService := auth.NewJWTService(testSecret, time.Hour, 24*time.Hour)

	e.GET("/protected", func(c echo.Context) error {
		claims := ClaimsFromContext(c)
		if claims == nil {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, map[string]string{
			"userId": claims.UserID,
			"role":   string(claims.Role),
		})
	}, Authenticate([]byte(testSecret)))

	return e, jwtService
}

func signedToken(t *testing.T, jwtService *auth.JWTService) (string, *model.User) {
	t.Helper()
	locationID := uuid.New()
	user := &model.User{
		ID:         uuid.New(),
		TenantID:   uuid.New(),
		LocationID: &locationID,
		Email:      "chef@blackpot.com",
		Name:       "Executive Chef",
		Role:       model.RoleChef,
	}
	token, err := jwtService.GenerateAccessToken(user)
	require.NoError(t, err)
	return token, user
}

func TestAuthenticate_ValidToken(t *testing.T) {
	e, jwtService := newAuthTestServer()
	token, user := signedToken(t, jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, user.ID.String(), body["userId"])
	assert.Equal(t, string(model.RoleChef), body["role"])
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	e, _ := newAuthTestServer()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "INVALID_TOKEN", body.Error)
	assert.Equal(t, "No authentication token provided", body.Message)
}

func TestAuthenticate_BadTokens(t *testing.T) {
	e, _ := newAuthTestServer()
	staleService := auth.NewJWTService("other-secret", time.Hour, 24*time.Hour)
	foreignToken, _ := signedToken(t, staleService)

	tests := []struct {
		name   string
		header string
	}{
		{"malformed token", "Bearer not-a-jwt"},
		{"wrong signature", "Bearer " + foreignToken},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set(echo.HeaderAuthorization, tt.header)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			var body apperrors.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "INVALID_TOKEN", body.Error)
			assert.Equal(t, "Invalid or expired token", body.Message)
		})
	}
}

func TestClaimsFromContext_Unset(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Nil(t, ClaimsFromContext(c))
}
