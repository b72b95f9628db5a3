package dto

import (
	"time"

	"linkup/internal/domain/message"

	"github.com/google/uuid"
)

type MessageResponse struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	Content        string    `json:"content"`
	MediaURL       string    `json:"media_url"`
	CreatedAt      string    `json:"created_at"`
}

type SendMessageResponse struct {
	Message MessageResponse `json:"message"`
}

func NewSendMessageResponse(m message.Message) SendMessageResponse {
	return SendMessageResponse{Message: MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Content:        m.Content,
		MediaURL:       m.MediaURL,
		CreatedAt:      m.CreatedAt.UTC().Format(time.RFC3339),
	}}
}
