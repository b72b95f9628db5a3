package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusActive = "active"
	StatusClosed = "closed"
)

type Job struct {
	ID                uuid.UUID
	Title             string
	CompanyID         *uuid.UUID
	PostedBy          *uuid.UUID
	Description       string
	Requirements      string
	SalaryMin         *int
	SalaryMax         *int
	Location          string
	JobType           string
	ExperienceLevel   string
	RemoteWork        bool
	Status            string
	ApplicationsCount int
	ViewsCount        int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
