package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ConversationUpdatedEvent struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id"`
	Timestamp      string `json:"timestamp"`
}

// NotifyConversationUpdated satisfies the message write path's notifier.
func (h *Hub) NotifyConversationUpdated(conversationID uuid.UUID) {
	if h == nil || conversationID == uuid.Nil {
		return
	}

	evt := ConversationUpdatedEvent{
		Type:           "conversation_updated",
		ConversationID: conversationID.String(),
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
