package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/middleware"
	"marketdz/internal/usecase"
	"marketdz/pkg/errors"
	"marketdz/pkg/response"
)

type SecurityHandler struct {
	securityUseCase *usecase.SecurityUseCase
}

func NewSecurityHandler(securityUseCase *usecase.SecurityUseCase) *SecurityHandler {
	return &SecurityHandler{securityUseCase: securityUseCase}
}

func (h *SecurityHandler) ReportItem(c echo.Context) error {
	var req struct {
		ItemID             int    `json:"itemId" validate:"required"`
		Reason             string `json:"reason" validate:"required"`
		AdditionalComments string `json:"additionalComments"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	report, err := h.securityUseCase.ReportItem(c.Request().Context(), middleware.UserID(c), usecase.ReportItemInput{
		ItemID:             req.ItemID,
		Reason:             req.Reason,
		AdditionalComments: req.AdditionalComments,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, report)
}

func (h *SecurityHandler) MyReports(c echo.Context) error {
	reports, err := h.securityUseCase.GetUserReports(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, reports)
}

func (h *SecurityHandler) BlockUser(c echo.Context) error {
	var req struct {
		UserID int    `json:"userId" validate:"required"`
		Reason string `json:"reason"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	block, err := h.securityUseCase.BlockUser(c.Request().Context(), middleware.UserID(c), req.UserID, req.Reason)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, block)
}

func (h *SecurityHandler) UnblockUser(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.Error(c, errors.BadRequest("Invalid user id", err))
	}
	if err := h.securityUseCase.UnblockUser(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "unblocked"})
}

func (h *SecurityHandler) BlockedUsers(c echo.Context) error {
	blocks, users, err := h.securityUseCase.GetBlockedUsers(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]interface{}{
		"blocks": blocks,
		"users":  users,
	})
}
