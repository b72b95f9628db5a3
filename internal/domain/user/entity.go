package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

// User mirrors a row of the profiles table. Accounts are created by the
// external signup flow; this service only reads and edits profiles.
type User struct {
	ID               uuid.UUID
	Email            string
	Name             string
	Headline         string
	About            string
	Location         string
	Website          string
	AvatarURL        string
	BannerURL        string
	ConnectionsCount int
	IsVerified       bool
	IsPremium        bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
