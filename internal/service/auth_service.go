package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"blackpot/internal/auth"
	apperrors "blackpot/internal/errors"
	"blackpot/internal/metrics"
	"blackpot/internal/model"
	"blackpot/internal/repository"
)

// LoginResult is what a successful login hands back to the transport layer.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	User         *model.User
}

// AuthService handles credential verification, token issuance, and password
// rotation.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
	VerifyToken(token string) (*auth.Claims, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies the credentials and issues an access/refresh token pair
// carrying a snapshot of the user's current role, tenant, and location.
// Unknown email and wrong password both return ErrInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// ChangePassword re-verifies the caller's current password before persisting
// a new hash. Tokens issued before the change stay valid until they expire;
// there is no server-side revocation list.
func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		metrics.PasswordChangesTotal.WithLabelValues("failure").Inc()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	if !auth.CheckPassword(currentPassword, user.PasswordHash) {
		metrics.PasswordChangesTotal.WithLabelValues("failure").Inc()
		return apperrors.ErrInvalidCurrentPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		metrics.PasswordChangesTotal.WithLabelValues("failure").Inc()
		return fmt.Errorf("update password: %w", err)
	}

	metrics.PasswordChangesTotal.WithLabelValues("success").Inc()
	return nil
}

// VerifyToken validates a bearer token and returns the claims embedded at
// issuance. Any failure collapses to ErrTokenInvalid.
func (s *authService) VerifyToken(token string) (*auth.Claims, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrTokenInvalid
	}
	metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()
	return claims, nil
}
