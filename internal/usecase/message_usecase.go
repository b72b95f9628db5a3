package usecase

import (
	"context"
	"strings"

	"linkup/internal/domain/message"
	"linkup/internal/repository"

	"github.com/google/uuid"
)

type SendMessageInput struct {
	RecipientID    *uuid.UUID
	ConversationID *uuid.UUID
	Content        string
	MediaURL       string
}

type MessageUsecase interface {
	SendMessage(ctx context.Context, senderID uuid.UUID, in SendMessageInput) (message.Message, error)
}

// ConversationNotifier publishes a best-effort event when a conversation
// receives a new message. Implemented by the ws hub.
type ConversationNotifier interface {
	NotifyConversationUpdated(conversationID uuid.UUID)
}

type Messages struct {
	messages repository.MessageRepository
	notifier ConversationNotifier
}

func NewMessageUsecase(messages repository.MessageRepository, notifier ConversationNotifier) *Messages {
	return &Messages{messages: messages, notifier: notifier}
}

func (u *Messages) SendMessage(ctx context.Context, senderID uuid.UUID, in SendMessageInput) (message.Message, error) {
	if senderID == uuid.Nil {
		return message.Message{}, ErrUnauthorized
	}

	content := strings.TrimSpace(in.Content)
	mediaURL := strings.TrimSpace(in.MediaURL)
	if content == "" && mediaURL == "" {
		return message.Message{}, ErrEmptyMessage
	}

	// No conversation id starts a new thread.
	conversationID := uuid.New()
	if in.ConversationID != nil && *in.ConversationID != uuid.Nil {
		conversationID = *in.ConversationID
	}

	m := message.Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		MediaURL:       mediaURL,
		MessageType:    message.TypeText,
	}

	if err := u.messages.Insert(ctx, &m); err != nil {
		return message.Message{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.NotifyConversationUpdated(conversationID)
	}

	return m, nil
}

var _ MessageUsecase = (*Messages)(nil)
