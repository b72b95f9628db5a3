package repository

import (
	"context"

	"linkup/internal/database"
	"linkup/internal/domain/message"
)

type MessageRepository interface {
	Insert(ctx context.Context, m *message.Message) error
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Insert(ctx context.Context, m *message.Message) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO messages (id, conversation_id, sender_id, content, media_url, message_type)
		 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6)
		 RETURNING created_at`,
		m.ID, m.ConversationID, m.SenderID, m.Content, m.MediaURL, m.MessageType,
	)
	return row.Scan(&m.CreatedAt)
}

var _ MessageRepository = (*PostgresMessageRepository)(nil)
