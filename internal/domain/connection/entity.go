package connection

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Connection links two profiles. Only accepted connections count toward a
// user's network, regardless of who initiated the request.
type Connection struct {
	ID          uuid.UUID
	RequesterID uuid.UUID
	ReceiverID  uuid.UUID
	Status      Status
	Message     string
	CreatedAt   time.Time
	AcceptedAt  *time.Time
}
