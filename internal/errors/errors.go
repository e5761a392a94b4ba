package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when the login email or password is
	// wrong. The two cases are deliberately indistinguishable so responses
	// cannot be used to probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrTokenInvalid is returned for any token failure: missing, malformed,
	// bad signature, or expired. The cases are deliberately conflated.
	ErrTokenInvalid = errors.New("invalid or expired token")
	// ErrInsufficientPermissions is returned when the caller's role is not in
	// the required set for a route.
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	// ErrInvalidCurrentPassword is returned when a password change fails its
	// current-password check.
	ErrInvalidCurrentPassword = errors.New("current password incorrect")
	// ErrUserNotFound is returned when a user id no longer resolves to a record.
	ErrUserNotFound = errors.New("user not found")
)

// ErrorResponse is the canonical error envelope returned by every endpoint.
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HTTPError carries an HTTP status plus the machine-readable error code.
type HTTPError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, code, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to the response envelope.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Status:  "error",
		Code:    e.StatusCode,
		Error:   e.Code,
		Message: e.Message,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Unclassified errors map
// to a generic 500 with no internal detail.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error())
	case errors.Is(err, ErrTokenInvalid):
		return NewHTTPError(http.StatusUnauthorized, "INVALID_TOKEN", err.Error())
	case errors.Is(err, ErrInsufficientPermissions):
		return NewHTTPError(http.StatusForbidden, "INSUFFICIENT_PERMISSIONS", err.Error())
	case errors.Is(err, ErrInvalidCurrentPassword):
		return NewHTTPError(http.StatusBadRequest, "PASSWORD_UPDATE_FAILED", err.Error())
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
