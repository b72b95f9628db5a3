package dto

import (
	"time"

	"linkup/internal/domain/job"
	"linkup/internal/pkg/pagination"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID                uuid.UUID `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Location          string    `json:"location"`
	JobType           string    `json:"job_type"`
	RemoteWork        bool      `json:"remote_work"`
	SalaryMin         *int      `json:"salary_min"`
	SalaryMax         *int      `json:"salary_max"`
	ApplicationsCount int       `json:"applications_count"`
	CreatedAt         string    `json:"created_at"`
}

type JobSearchResponse struct {
	Jobs       []JobResponse       `json:"jobs"`
	Pagination pagination.Envelope `json:"pagination"`
}

func NewJobSearchResponse(jobs []job.Job, env pagination.Envelope) JobSearchResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, JobResponse{
			ID:                j.ID,
			Title:             j.Title,
			Description:       j.Description,
			Location:          j.Location,
			JobType:           j.JobType,
			RemoteWork:        j.RemoteWork,
			SalaryMin:         j.SalaryMin,
			SalaryMax:         j.SalaryMax,
			ApplicationsCount: j.ApplicationsCount,
			CreatedAt:         j.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return JobSearchResponse{Jobs: out, Pagination: env}
}
