package handler

import (
	"linkup/internal/delivery/http/dto"
	"linkup/internal/delivery/http/middleware"
	"linkup/internal/pkg/response"
	"linkup/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MessageHandler struct {
	uc usecase.MessageUsecase
}

type sendMessageRequest struct {
	RecipientID    string `json:"recipient_id"`
	ConversationID string `json:"conversation_id"`
	Content        string `json:"content"`
	MediaURL       string `json:"media_url"`
}

func NewMessageHandler(uc usecase.MessageUsecase) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/messages", h.SendMessage)
}

func (h *MessageHandler) SendMessage(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	recipientID, err := parseOptionalUUID(req.RecipientID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid recipient_id", nil, err)
	}
	conversationID, err := parseOptionalUUID(req.ConversationID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid conversation_id", nil, err)
	}

	m, err := h.uc.SendMessage(c.Context(), userID, usecase.SendMessageInput{
		RecipientID:    recipientID,
		ConversationID: conversationID,
		Content:        req.Content,
		MediaURL:       req.MediaURL,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.NewSendMessageResponse(m))
}
