package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "blackpot/internal/errors"
	"blackpot/internal/middleware"
	"blackpot/internal/model"
	"blackpot/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// ChangePasswordRequest represents a password change request. The user id
// comes from the verified token, never from the body.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// LoginData is the payload of a successful login response.
type LoginData struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         UserSummary `json:"user"`
}

// Login godoc
// @Summary Authenticate with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
				Status:  "error",
				Code:    http.StatusUnauthorized,
				Error:   "INVALID_CREDENTIALS",
				Message: err.Error(),
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data: LoginData{
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
			User:         summarizeUser(result.User),
		},
	})
}

// ChangePassword godoc
// @Summary Change the authenticated user's password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
			Status: "error",
			Code:   http.StatusUnauthorized,
			Error:  "INVALID_TOKEN",
		})
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apperrors.ErrorResponse{
			Status: "error",
			Code:   http.StatusUnauthorized,
			Error:  "INVALID_TOKEN",
		})
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		if errors.Is(err, apperrors.ErrInvalidCurrentPassword) || errors.Is(err, apperrors.ErrUserNotFound) {
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
				Status:  "error",
				Code:    http.StatusBadRequest,
				Error:   "PASSWORD_UPDATE_FAILED",
				Message: err.Error(),
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Password updated successfully",
	})
}

func summarizeUser(u *model.User) UserSummary {
	summary := UserSummary{
		ID:       u.ID.String(),
		Email:    u.Email,
		Name:     u.Name,
		Role:     string(u.Role),
		TenantID: u.TenantID.String(),
	}
	if u.LocationID != nil {
		summary.LocationID = u.LocationID.String()
	}
	return summary
}
