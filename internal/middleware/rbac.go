package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "blackpot/internal/errors"
	"blackpot/internal/model"
)

// RequireRole enforces that the authenticated caller's role is in the allowed
// set. It expects Authenticate to have run first; a request with no attached
// claims is rejected as unauthenticated, not forbidden.
func RequireRole(roles ...model.UserRole) echo.MiddlewareFunc {
	allowed := make(map[model.UserRole]struct{}, len(roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
		names = append(names, string(r))
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFromContext(c)
			if claims == nil {
				return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
					Status: "error",
					Code:   http.StatusUnauthorized,
					Error:  "INVALID_TOKEN",
				})
			}

			if _, ok := allowed[claims.Role]; !ok {
				return c.JSON(http.StatusForbidden, apperrors.ErrorResponse{
					Status:  "error",
					Code:    http.StatusForbidden,
					Error:   "INSUFFICIENT_PERMISSIONS",
					Message: fmt.Sprintf("This action requires one of: %s", strings.Join(names, ", ")),
				})
			}

			return next(c)
		}
	}
}
