package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"blackpot/internal/auth"
	apperrors "blackpot/internal/errors"
	"blackpot/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService("test-secret", time.Hour, 24*time.Hour)
}

func newTestUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	locationID := uuid.New()
	return &model.User{
		ID:           uuid.New(),
		TenantID:     uuid.New(),
		LocationID:   &locationID,
		Email:        "manager1@blackpot.com",
		Name:         "Manager 1",
		PasswordHash: string(hash),
		Role:         model.RoleManager,
		IsActive:     true,
	}
}

func TestAuthService_Login(t *testing.T) {
	user := newTestUser(t, "valid-password")

	tests := []struct {
		name      string
		email     string
		password  string
		setupMock func(repo *MockUserRepository)
		wantErr   error
	}{
		{
			name:     "successful login",
			email:    user.Email,
			password: "valid-password",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@blackpot.com",
			password: "valid-password",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, "nobody@blackpot.com").
					Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    user.Email,
			password: "wrong-password",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
			},
			wantErr: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewAuthService(repo, newTestJWTService())

			result, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
				assert.NotEqual(t, result.AccessToken, result.RefreshToken)
				assert.Equal(t, user, result.User)
			}
			repo.AssertExpectations(t)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestAuthService_Login_ErrorsIndistinguishable(t *testing.T) {
	user := newTestUser(t, "valid-password")
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, "nobody@blackpot.com").Return(nil, gorm.ErrRecordNotFound)
	repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
	svc := NewAuthService(repo, newTestJWTService())

	_, errUnknown := svc.Login(context.Background(), "nobody@blackpot.com", "valid-password")
	_, errWrongPw := svc.Login(context.Background(), user.Email, "wrong-password")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, errUnknown, errWrongPw)
}

func TestAuthService_Login_IssuesValidAccessToken(t *testing.T) {
	user := newTestUser(t, "valid-password")
	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

	jwtService := newTestJWTService()
	svc := NewAuthService(repo, jwtService)

	result, err := svc.Login(context.Background(), user.Email, "valid-password")
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.TenantID.String(), claims.TenantID)
	assert.Equal(t, model.RoleManager, claims.Role)
	assert.Equal(t, user.Email, claims.Email)
}

func TestAuthService_ChangePassword(t *testing.T) {
	user := newTestUser(t, "current-password")

	tests := []struct {
		name            string
		currentPassword string
		setupMock       func(repo *MockUserRepository)
		wantErr         error
	}{
		{
			name:            "successful change",
			currentPassword: "current-password",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
				repo.On("UpdatePassword", mock.Anything, user.ID, mock.MatchedBy(func(hash string) bool {
					return bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password-123")) == nil
				})).Return(nil)
			},
		},
		{
			name:            "user no longer exists",
			currentPassword: "current-password",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, user.ID).Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: apperrors.ErrUserNotFound,
		},
		{
			name:            "wrong current password",
			currentPassword: "wrong-password",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
			},
			wantErr: apperrors.ErrInvalidCurrentPassword,
		},
		{
			name:            "store write fails",
			currentPassword: "current-password",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
				repo.On("UpdatePassword", mock.Anything, user.ID, mock.AnythingOfType("string")).
					Return(errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewAuthService(repo, newTestJWTService())

			err := svc.ChangePassword(context.Background(), user.ID, tt.currentPassword, "new-password-123")

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.name == "store write fails":
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
		})
	}
}

// The stored hash must not change when the current-password check fails.
func TestAuthService_ChangePassword_NoWriteOnBadCurrent(t *testing.T) {
	user := newTestUser(t, "current-password")
	repo := new(MockUserRepository)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	svc := NewAuthService(repo, newTestJWTService())

	err := svc.ChangePassword(context.Background(), user.ID, "wrong-password", "new-password-123")

	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrentPassword)
	repo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_VerifyToken(t *testing.T) {
	user := newTestUser(t, "valid-password")
	jwtService := newTestJWTService()
	svc := NewAuthService(new(MockUserRepository), jwtService)

	token, err := jwtService.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)

	claims, err = svc.VerifyToken("garbage")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
}
