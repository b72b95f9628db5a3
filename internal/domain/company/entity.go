package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID          uuid.UUID
	Name        string
	Description string
	Website     string
	LogoURL     string
	Industry    string
	Location    string
	Verified    bool
	CreatedAt   time.Time
}
