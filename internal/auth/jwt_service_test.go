package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "blackpot/internal/errors"
	"blackpot/internal/model"
)

func testUser() *model.User {
	locationID := uuid.New()
	return &model.User{
		ID:         uuid.New(),
		TenantID:   uuid.New(),
		LocationID: &locationID,
		Email:      "server1@blackpot.com",
		Name:       "Alex Johnson (Server)",
		Role:       model.RoleServer,
		IsActive:   true,
	}
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 24*time.Hour)
	user := testUser()

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.TenantID.String(), claims.TenantID)
	assert.Equal(t, user.LocationID.String(), claims.LocationID)
	assert.Equal(t, model.RoleServer, claims.Role)
	assert.Equal(t, user.Email, claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_AccessTokenNoLocation(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 24*time.Hour)
	user := testUser()
	user.LocationID = nil

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Empty(t, claims.LocationID)
}

func TestJWTService_ValidateToken_Failures(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 24*time.Hour)
	user := testUser()

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name: "malformed token",
			token: func(t *testing.T) string {
				return "not-a-jwt"
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				other := NewJWTService("different-secret", time.Hour, 24*time.Hour)
				token, err := other.GenerateAccessToken(user)
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				claims := &Claims{
					UserID:   user.ID.String(),
					TenantID: user.TenantID.String(),
					Role:     user.Role,
					Email:    user.Email,
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
						IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
					},
				}
				signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				require.NoError(t, err)
				return signed
			},
		},
		{
			name: "wrong signing algorithm",
			token: func(t *testing.T) string {
				// alg: none
				signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
					"userId": user.ID.String(),
				}).SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return signed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token(t))
			assert.Nil(t, claims)
			// Every failure mode maps to the same error.
			assert.ErrorIs(t, err, apperrors.ErrTokenInvalid)
		})
	}
}

func TestJWTService_RefreshTokenClaimsSubset(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour, 24*time.Hour)
	user := testUser()

	tokenString, err := svc.GenerateRefreshToken(user)
	require.NoError(t, err)

	var claims RefreshClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.TenantID.String(), claims.TenantID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, 5*time.Second)

	// The refresh token must not carry role or email.
	var raw jwt.MapClaims
	_, _, err = jwt.NewParser().ParseUnverified(tokenString, &raw)
	require.NoError(t, err)
	assert.NotContains(t, raw, "role")
	assert.NotContains(t, raw, "email")
	assert.NotContains(t, raw, "locationId")
}

func TestJWTService_DefaultTTLs(t *testing.T) {
	svc := NewJWTService("test-secret", 0, 0)
	user := testUser()

	access, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(access)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(DefaultAccessTokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}
