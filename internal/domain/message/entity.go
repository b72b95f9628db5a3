package message

import (
	"time"

	"github.com/google/uuid"
)

const TypeText = "text"

type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Content        string
	MediaURL       string
	MessageType    string
	CreatedAt      time.Time
}
