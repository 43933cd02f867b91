package handler

import (
	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/middleware"
	"marketdz/internal/domain/entity"
	"marketdz/internal/usecase"
	"marketdz/pkg/response"
)

type AuthHandler struct {
	authUseCase         *usecase.AuthUseCase
	verificationUseCase *usecase.VerificationUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, verificationUseCase *usecase.VerificationUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase:         authUseCase,
		verificationUseCase: verificationUseCase,
	}
}

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	DisplayName string `json:"displayName" validate:"required,min=2"`
	PhoneNumber string `json:"phoneNumber"`
	City        string `json:"city"`
	Province    string `json:"province"`
}

type userResponse struct {
	ID              int    `json:"id"`
	Email           string `json:"email"`
	DisplayName     string `json:"displayName"`
	IsEmailVerified bool   `json:"isEmailVerified"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:              user.ID,
		Email:           user.Email,
		DisplayName:     user.DisplayName,
		IsEmailVerified: user.IsEmailVerified,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		PhoneNumber: req.PhoneNumber,
		City:        req.City,
		Province:    req.Province,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, authResponse{Token: result.Token, User: toUserResponse(result.User)})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, authResponse{Token: result.Token, User: toUserResponse(result.User)})
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	userID := middleware.UserID(c)
	result, err := h.authUseCase.RefreshToken(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, authResponse{Token: result.Token, User: toUserResponse(result.User)})
}

func (h *AuthHandler) CheckEmail(c echo.Context) error {
	email := c.QueryParam("email")
	registered, err := h.authUseCase.IsEmailRegistered(c.Request().Context(), email)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"registered": registered})
}

func (h *AuthHandler) SendVerification(c echo.Context) error {
	userID := middleware.UserID(c)
	if _, err := h.verificationUseCase.SendVerificationEmail(c.Request().Context(), userID); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "verification email sent"})
}

func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req struct {
		Token string `json:"token" validate:"required"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.verificationUseCase.ConfirmEmail(c.Request().Context(), req.Token)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, toUserResponse(user))
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req struct {
		CurrentPassword string `json:"currentPassword" validate:"required"`
		NewPassword     string `json:"newPassword" validate:"required,min=8"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := middleware.UserID(c)
	if err := h.authUseCase.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "password changed"})
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.verificationUseCase.RequestPasswordReset(c.Request().Context(), req.Email); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "reset email sent if the address is registered"})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req struct {
		Token       string `json:"token" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=8"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	ctx := c.Request().Context()
	token, err := h.verificationUseCase.Validate(ctx, req.Token, entity.VerificationPasswordReset)
	if err != nil {
		return response.Error(c, err)
	}
	if err := h.authUseCase.ResetPassword(ctx, token.UserID, req.NewPassword); err != nil {
		return response.Error(c, err)
	}
	if err := h.verificationUseCase.MarkUsed(ctx, token); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "password reset"})
}
