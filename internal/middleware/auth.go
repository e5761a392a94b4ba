package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"blackpot/internal/auth"
	apperrors "blackpot/internal/errors"
	"blackpot/internal/metrics"
)

// ContextKeyClaims is the echo context key the authentication gate stores the
// decoded claims under. Downstream handlers and the authorization gate read
// it via ClaimsFromContext.
const ContextKeyClaims = "claims"

// ClaimsFromContext returns the claims attached by Authenticate, or nil when
// the request did not pass through the gate.
func ClaimsFromContext(c echo.Context) *auth.Claims {
	claims, _ := c.Get(ContextKeyClaims).(*auth.Claims)
	return claims
}

// Authenticate verifies the bearer token from the Authorization header and
// attaches the decoded claims to the request context. Verification is pure
// signature + expiry checking against the embedded snapshot; the credential
// store is never consulted here.
func Authenticate(jwtSecret []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: jwtSecret,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		SuccessHandler: func(c echo.Context) {
			token, _ := c.Get("user").(*jwt.Token)
			if token == nil {
				return
			}
			if claims, ok := token.Claims.(*auth.Claims); ok {
				c.Set(ContextKeyClaims, claims)
				metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
			// One message for malformed, bad-signature, and expired tokens;
			// only a missing header is reported differently.
			message := "Invalid or expired token"
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				message = "No authentication token provided"
			}
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Error:   "INVALID_TOKEN",
				Message: message,
			})
		},
	})
}
