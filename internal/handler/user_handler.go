package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "blackpot/internal/errors"
	"blackpot/internal/middleware"
	"blackpot/internal/service"
)

// UserHandler handles staff directory endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me godoc
// @Summary Return the authenticated user's current record
// @Tags users
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *UserHandler) Me(c echo.Context) error {
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

	user, err := h.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{
				Status:  "error",
				Code:    http.StatusNotFound,
				Error:   "NOT_FOUND",
				Message: err.Error(),
			})
		}
		return err
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   summarizeUser(user),
	})
}

// ListUsers godoc
// @Summary List staff members
// @Tags users
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	summaries := make([]UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, summarizeUser(&users[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Status: "success",
		Code:   http.StatusOK,
		Data:   summaries,
	})
}
