package repository

import (
	"context"

	"linkup/internal/database"
	"linkup/internal/domain/connection"

	"github.com/google/uuid"
)

type ConnectionRepository interface {
	AcceptedPeerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type PostgresConnectionRepository struct {
	db database.DB
}

func NewPostgresConnectionRepository(db database.DB) *PostgresConnectionRepository {
	return &PostgresConnectionRepository{db: db}
}

// AcceptedPeerIDs resolves the user's network: the counterpart of every
// accepted connection, whichever side the user sat on.
func (r *PostgresConnectionRepository) AcceptedPeerIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT CASE WHEN requester_id = $1 THEN receiver_id ELSE requester_id END
		 FROM connections
		 WHERE (requester_id = $1 OR receiver_id = $1) AND status = $2`,
		userID, connection.StatusAccepted,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ ConnectionRepository = (*PostgresConnectionRepository)(nil)
