package usecase

import (
	"context"
	"log"

	"linkup/internal/domain/job"
	"linkup/internal/domain/user"
	"linkup/internal/infrastructure/ai"
	"linkup/internal/repository"

	"github.com/google/uuid"
)

const (
	// Scores are static for now: the provider reply is fetched but not
	// mapped back to job ids. See the prompt for the shape it is asked for.
	aiMatchScore       = 85
	fallbackMatchScore = 75

	candidateJobsLimit = 50
)

const noJobsMessage = "No jobs available"

type ProfileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
}

type RecommendationItem struct {
	Job          job.Job
	MatchScore   int
	MatchReasons []string
}

type RecommendationResult struct {
	Items   []RecommendationItem
	Message string
}

type RecommendationUsecase interface {
	GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) (RecommendationResult, error)
}

type Recommendations struct {
	profiles  ProfileReader
	jobs      repository.JobRepository
	companies repository.CompanyRepository
	ai        ai.CompletionClient
	logger    *log.Logger
}

func NewRecommendationUsecase(
	profiles ProfileReader,
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
	aiClient ai.CompletionClient,
	logger *log.Logger,
) *Recommendations {
	return &Recommendations{profiles: profiles, jobs: jobs, companies: companies, ai: aiClient, logger: logger}
}

func (u *Recommendations) GetRecommendations(ctx context.Context, userID uuid.UUID, limit int) (RecommendationResult, error) {
	if userID == uuid.Nil {
		return RecommendationResult{}, ErrUnauthorized
	}

	if limit <= 0 {
		limit = 10
	}
	if limit > candidateJobsLimit {
		limit = candidateJobsLimit
	}

	profile, err := u.profiles.GetByID(ctx, userID)
	if err != nil {
		if err == user.ErrNotFound {
			return RecommendationResult{}, user.ErrNotFound
		}
		return RecommendationResult{}, ErrInternal
	}

	jobs, err := u.jobs.ListActive(ctx, candidateJobsLimit)
	if err != nil {
		return RecommendationResult{}, ErrInternal
	}
	if len(jobs) == 0 {
		return RecommendationResult{Items: []RecommendationItem{}, Message: noJobsMessage}, nil
	}

	if u.ai == nil {
		return RecommendationResult{Items: fallbackItems(jobs, limit)}, nil
	}

	prompt := BuildRecommendationPrompt(profile, jobs, u.companyNames(ctx, jobs), limit)

	completion, err := u.ai.Complete(ctx, prompt)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Recommendations] AI call failed, using fallback: %v", err)
		}
		return RecommendationResult{Items: fallbackItems(jobs, limit)}, nil
	}

	if u.logger != nil && completion.Usage != nil {
		u.logger.Printf("[Recommendations] AI completion ok tokens=%d", completion.Usage.TotalTokens)
	}

	items := make([]RecommendationItem, 0, limit)
	for _, j := range jobs[:min(limit, len(jobs))] {
		items = append(items, RecommendationItem{
			Job:          j,
			MatchScore:   aiMatchScore,
			MatchReasons: []string{"Skills match", "Location preference"},
		})
	}
	return RecommendationResult{Items: items}, nil
}

func (u *Recommendations) companyNames(ctx context.Context, jobs []job.Job) map[uuid.UUID]string {
	ids := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		if j.CompanyID != nil {
			ids = append(ids, *j.CompanyID)
		}
	}
	if u.companies == nil || len(ids) == 0 {
		return nil
	}

	names, err := u.companies.NamesByIDs(ctx, ids)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Recommendations] company lookup failed: %v", err)
		}
		return nil
	}
	return names
}

func fallbackItems(jobs []job.Job, limit int) []RecommendationItem {
	out := make([]RecommendationItem, 0, limit)
	for _, j := range jobs[:min(limit, len(jobs))] {
		out = append(out, RecommendationItem{
			Job:          j,
			MatchScore:   fallbackMatchScore,
			MatchReasons: []string{"General match"},
		})
	}
	return out
}

var _ RecommendationUsecase = (*Recommendations)(nil)
