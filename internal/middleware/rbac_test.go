package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackpot/internal/auth"
	apperrors "blackpot/internal/errors"
	"blackpot/internal/model"
)

func invokeWithRole(t *testing.T, mw echo.MiddlewareFunc, claims *auth.Claims) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claims != nil {
		c.Set(ContextKeyClaims, claims)
	}

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec
}

func TestRequireRole(t *testing.T) {
	mw := RequireRole(model.RoleManager, model.RoleOwner)

	tests := []struct {
		name       string
		role       model.UserRole
		wantStatus int
	}{
		{"owner allowed", model.RoleOwner, http.StatusOK},
		{"manager allowed", model.RoleManager, http.StatusOK},
		{"server forbidden", model.RoleServer, http.StatusForbidden},
		{"chef forbidden", model.RoleChef, http.StatusForbidden},
		{"sommelier forbidden", model.RoleSommelier, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := invokeWithRole(t, mw, &auth.Claims{UserID: "u1", Role: tt.role})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireRole_ForbiddenEnvelope(t *testing.T) {
	mw := RequireRole(model.RoleManager, model.RoleOwner)
	rec := invokeWithRole(t, mw, &auth.Claims{UserID: "u1", Role: model.RoleHost})

	require.Equal(t, http.StatusForbidden, rec.Code)
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, http.StatusForbidden, body.Code)
	assert.Equal(t, "INSUFFICIENT_PERMISSIONS", body.Error)
	assert.Equal(t, "This action requires one of: MANAGER, OWNER", body.Message)
}

// A request that skipped the authentication gate carries no claims and is
// rejected as unauthenticated rather than forbidden.
func TestRequireRole_NoClaims(t *testing.T) {
	mw := RequireRole(model.RoleOwner)
	rec := invokeWithRole(t, mw, nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_TOKEN", body.Error)
}
