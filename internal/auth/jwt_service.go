package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "blackpot/internal/errors"
	"blackpot/internal/model"
)

const (
	// DefaultAccessTokenExpiry is used when no access token TTL is configured.
	DefaultAccessTokenExpiry = 24 * time.Hour
	// DefaultRefreshTokenExpiry is used when no refresh token TTL is configured.
	DefaultRefreshTokenExpiry = 7 * 24 * time.Hour
)

// Claims is the payload embedded in access tokens. It is a snapshot of the
// user record at issuance time; a later role change does not invalidate
// tokens already in flight.
type Claims struct {
	UserID     string         `json:"userId"`
	TenantID   string         `json:"tenantId"`
	LocationID string         `json:"locationId,omitempty"`
	Role       model.UserRole `json:"role"`
	Email      string         `json:"email"`
	jwt.RegisteredClaims
}

// RefreshClaims is the reduced payload embedded in refresh tokens. It carries
// no role or email so a refresh exchange must re-fetch the current user
// record rather than trust a stale snapshot.
type RefreshClaims struct {
	UserID   string `json:"userId"`
	TenantID string `json:"tenantId"`
	jwt.RegisteredClaims
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService creates a new JWT service. The secret must be non-empty;
// configuration loading guarantees that before this is ever constructed.
func NewJWTService(secret string, accessTTL, refreshTTL time.Duration) *JWTService {
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenExpiry
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenExpiry
	}
	return &JWTService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateAccessToken signs an access token carrying the full identity
// snapshot of the user.
func (s *JWTService) GenerateAccessToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:   user.ID.String(),
		TenantID: user.TenantID.String(),
		Role:     user.Role,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	if user.LocationID != nil {
		claims.LocationID = user.LocationID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// GenerateRefreshToken signs a refresh token carrying only the user and
// tenant identifiers.
func (s *JWTService) GenerateRefreshToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &RefreshClaims{
		UserID:   user.ID.String(),
		TenantID: user.TenantID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates an access token and returns its claims. Every
// failure mode (malformed payload, wrong signature, expiry) collapses to
// ErrTokenInvalid so callers cannot learn which validation step failed.
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, apperrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrTokenInvalid
	}

	return claims, nil
}

// Secret exposes the signing key for wiring transport-level verification
// middleware off the same process-wide secret.
func (s *JWTService) Secret() []byte {
	return s.secret
}
