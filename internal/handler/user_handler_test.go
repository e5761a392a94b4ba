package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "blackpot/internal/errors"
	"blackpot/internal/model"
)

// MockUserService is a mock implementation of UserService.
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func TestUserHandler_Me(t *testing.T) {
	user := handlerTestUser()
	svc := new(MockUserService)
	svc.On("GetUser", mock.Anything, user.ID).Return(user, nil)

	h := NewUserHandler(svc)
	c, rec := postJSON(newTestEcho(), http.MethodGet, "/api/me", "")
	setClaims(c, user.ID)

	require.NoError(t, h.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string      `json:"status"`
		Data   UserSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, user.ID.String(), body.Data.ID)
	assert.Equal(t, user.Email, body.Data.Email)
}

func TestUserHandler_Me_NoClaims(t *testing.T) {
	h := NewUserHandler(new(MockUserService))
	c, rec := postJSON(newTestEcho(), http.MethodGet, "/api/me", "")

	require.NoError(t, h.Me(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestUserHandler_Me_NotFound(t *testing.T) {
	userID := uuid.New()
	svc := new(MockUserService)
	svc.On("GetUser", mock.Anything, userID).Return(nil, apperrors.ErrUserNotFound)

	h := NewUserHandler(svc)
	c, rec := postJSON(newTestEcho(), http.MethodGet, "/api/me", "")
	setClaims(c, userID)

	require.NoError(t, h.Me(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestUserHandler_ListUsers(t *testing.T) {
	users := []model.User{*handlerTestUser(), *handlerTestUser()}
	svc := new(MockUserService)
	svc.On("ListUsers", mock.Anything).Return(users, nil)

	h := NewUserHandler(svc)
	c, rec := postJSON(newTestEcho(), http.MethodGet, "/api/users", "")

	require.NoError(t, h.ListUsers(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data []UserSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.NotContains(t, rec.Body.String(), "password")
}
