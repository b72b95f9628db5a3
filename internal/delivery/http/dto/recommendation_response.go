package dto

import (
	"linkup/internal/usecase"

	"github.com/google/uuid"
)

type RecommendedJobResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Location string    `json:"location"`
	JobType  string    `json:"job_type"`
}

type RecommendationResponse struct {
	Job          RecommendedJobResponse `json:"job"`
	MatchScore   int                    `json:"match_score"`
	MatchReasons []string               `json:"match_reasons"`
}

type RecommendationsResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	Message         string                   `json:"message,omitempty"`
}

func NewRecommendationsResponse(res usecase.RecommendationResult) RecommendationsResponse {
	out := make([]RecommendationResponse, 0, len(res.Items))
	for _, it := range res.Items {
		out = append(out, RecommendationResponse{
			Job: RecommendedJobResponse{
				ID:       it.Job.ID,
				Title:    it.Job.Title,
				Location: it.Job.Location,
				JobType:  it.Job.JobType,
			},
			MatchScore:   it.MatchScore,
			MatchReasons: it.MatchReasons,
		})
	}
	return RecommendationsResponse{Recommendations: out, Message: res.Message}
}
