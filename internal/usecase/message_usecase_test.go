package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"linkup/internal/domain/message"

	"github.com/google/uuid"
)

type mockMessageRepo struct {
	err      error
	inserted []message.Message
}

func (m *mockMessageRepo) Insert(_ context.Context, msg *message.Message) error {
	if m.err != nil {
		return m.err
	}
	msg.CreatedAt = time.Now().UTC()
	m.inserted = append(m.inserted, *msg)
	return nil
}

type mockNotifier struct {
	notified []uuid.UUID
}

func (m *mockNotifier) NotifyConversationUpdated(id uuid.UUID) {
	m.notified = append(m.notified, id)
}

func TestSendMessage_NoContentNoMedia(t *testing.T) {
	uc := NewMessageUsecase(&mockMessageRepo{}, nil)

	_, err := uc.SendMessage(context.Background(), uuid.New(), SendMessageInput{})
	if !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestSendMessage_MediaOnly(t *testing.T) {
	uc := NewMessageUsecase(&mockMessageRepo{}, nil)

	m, err := uc.SendMessage(context.Background(), uuid.New(), SendMessageInput{
		MediaURL: "https://cdn.example.com/pic.png",
	})
	if err != nil {
		t.Fatalf("media-only message must succeed: %v", err)
	}
	if m.ConversationID == uuid.Nil {
		t.Fatal("expected a generated conversation id")
	}
}

func TestSendMessage_GeneratedConversationIDsDiffer(t *testing.T) {
	uc := NewMessageUsecase(&mockMessageRepo{}, nil)
	sender := uuid.New()

	m1, err := uc.SendMessage(context.Background(), sender, SendMessageInput{Content: "first"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m2, err := uc.SendMessage(context.Background(), sender, SendMessageInput{Content: "second"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m1.ConversationID == m2.ConversationID {
		t.Fatal("two messages without a conversation id must start distinct threads")
	}
}

func TestSendMessage_SuppliedConversationIDKept(t *testing.T) {
	uc := NewMessageUsecase(&mockMessageRepo{}, nil)
	convID := uuid.New()

	m, err := uc.SendMessage(context.Background(), uuid.New(), SendMessageInput{
		ConversationID: &convID,
		Content:        "reply",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ConversationID != convID {
		t.Fatalf("expected conversation %s, got %s", convID, m.ConversationID)
	}
}

func TestSendMessage_NotifiesConversation(t *testing.T) {
	notifier := &mockNotifier{}
	uc := NewMessageUsecase(&mockMessageRepo{}, notifier)

	m, err := uc.SendMessage(context.Background(), uuid.New(), SendMessageInput{Content: "ping"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.notified) != 1 || notifier.notified[0] != m.ConversationID {
		t.Fatalf("expected one notification for %s, got %v", m.ConversationID, notifier.notified)
	}
}

func TestSendMessage_RepoError(t *testing.T) {
	uc := NewMessageUsecase(&mockMessageRepo{err: errors.New("db down")}, nil)

	_, err := uc.SendMessage(context.Background(), uuid.New(), SendMessageInput{Content: "hello"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
