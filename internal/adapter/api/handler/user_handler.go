package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/middleware"
	"marketdz/internal/usecase"
	"marketdz/pkg/errors"
	"marketdz/pkg/response"
)

type UserHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewUserHandler(authUseCase *usecase.AuthUseCase) *UserHandler {
	return &UserHandler{authUseCase: authUseCase}
}

// GetProfile returns the public profile of any user.
func (h *UserHandler) GetProfile(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid user id", err))
	}
	profile, err := h.authUseCase.GetProfile(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, profile)
}

// GetMe returns the authenticated user's own record.
func (h *UserHandler) GetMe(c echo.Context) error {
	user, err := h.authUseCase.GetUserByID(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	user.PasswordHash = ""
	return response.Success(c, user)
}

type updateProfileRequest struct {
	DisplayName    *string `json:"displayName" validate:"omitempty,min=2"`
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profilePicture"`
	PhoneNumber    *string `json:"phoneNumber"`
	City           *string `json:"city"`
	Province       *string `json:"province"`
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.UpdateProfile(c.Request().Context(), middleware.UserID(c), usecase.UpdateProfileInput{
		DisplayName:    req.DisplayName,
		Bio:            req.Bio,
		ProfilePicture: req.ProfilePicture,
		PhoneNumber:    req.PhoneNumber,
		City:           req.City,
		Province:       req.Province,
	})
	if err != nil {
		return response.Error(c, err)
	}
	user.PasswordHash = ""
	return response.Success(c, user)
}

func (h *UserHandler) UpdatePrivacy(c echo.Context) error {
	var req struct {
		ShowEmail       bool `json:"showEmail"`
		ShowPhoneNumber bool `json:"showPhoneNumber"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.authUseCase.UpdatePrivacy(c.Request().Context(), middleware.UserID(c), req.ShowEmail, req.ShowPhoneNumber)
	if err != nil {
		return response.Error(c, err)
	}
	user.PasswordHash = ""
	return response.Success(c, user)
}
