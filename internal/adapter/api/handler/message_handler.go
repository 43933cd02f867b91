package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"marketdz/internal/adapter/api/middleware"
	"marketdz/internal/usecase"
	"marketdz/pkg/errors"
	"marketdz/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{messageUseCase: messageUseCase}
}

func (h *MessageHandler) Send(c echo.Context) error {
	var req struct {
		ReceiverID    int    `json:"receiverId" validate:"required"`
		Content       string `json:"content" validate:"required"`
		RelatedItemID *int   `json:"relatedItemId"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.messageUseCase.Send(c.Request().Context(), middleware.UserID(c), usecase.SendMessageInput{
		ReceiverID:    req.ReceiverID,
		Content:       req.Content,
		RelatedItemID: req.RelatedItemID,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *MessageHandler) Inbox(c echo.Context) error {
	messages, err := h.messageUseCase.Inbox(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *MessageHandler) Sent(c echo.Context) error {
	messages, err := h.messageUseCase.Sent(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *MessageHandler) Get(c echo.Context) error {
	id, err := messageID(c)
	if err != nil {
		return response.Error(c, err)
	}
	message, err := h.messageUseCase.GetByID(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, message)
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	id, err := messageID(c)
	if err != nil {
		return response.Error(c, err)
	}
	message, err := h.messageUseCase.MarkRead(c.Request().Context(), middleware.UserID(c), id)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, message)
}

func (h *MessageHandler) Delete(c echo.Context) error {
	id, err := messageID(c)
	if err != nil {
		return response.Error(c, err)
	}
	if err := h.messageUseCase.Delete(c.Request().Context(), middleware.UserID(c), id); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"status": "deleted"})
}

func messageID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, errors.BadRequest("Invalid message id", err)
	}
	return id, nil
}
