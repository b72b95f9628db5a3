package usecase

import (
	"context"
	"log"
	"time"

	"linkup/internal/domain/job"
	"linkup/internal/pkg/pagination"
	"linkup/internal/repository"
)

type JobSearchParams struct {
	Query      string
	Location   string
	JobType    string
	RemoteWork *bool
	Page       int
	Limit      int
}

type JobSearchResult struct {
	Jobs       []job.Job           `json:"jobs"`
	Pagination pagination.Envelope `json:"pagination"`
}

type JobSearchUsecase interface {
	SearchJobs(ctx context.Context, params JobSearchParams) (JobSearchResult, error)
}

// SearchCache is the slice of the redis cache the job search needs; a nil
// cache disables caching entirely.
type SearchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type JobSearch struct {
	jobs   repository.JobRepository
	cache  SearchCache
	logger *log.Logger
}

func NewJobSearchUsecase(jobs repository.JobRepository, cache SearchCache, logger *log.Logger) *JobSearch {
	return &JobSearch{jobs: jobs, cache: cache, logger: logger}
}

func (u *JobSearch) SearchJobs(ctx context.Context, params JobSearchParams) (JobSearchResult, error) {
	p := pagination.Normalize(params.Page, params.Limit)
	params.Page = p.Page
	params.Limit = p.Limit

	cacheKey := JobSearchCacheKey(params)
	if u.cache != nil {
		var cached JobSearchResult
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Jobs] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	f := repository.JobSearchFilter{
		Query:      params.Query,
		Location:   params.Location,
		JobType:    params.JobType,
		RemoteWork: params.RemoteWork,
	}

	jobs, err := u.jobs.Search(ctx, f, p.Limit, p.Offset())
	if err != nil {
		return JobSearchResult{}, ErrInternal
	}

	total, err := u.jobs.CountSearch(ctx, f)
	if err != nil {
		return JobSearchResult{}, ErrInternal
	}

	out := JobSearchResult{Jobs: jobs, Pagination: p.Envelope(total)}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, out, 0)
		if u.logger != nil {
			u.logger.Printf("[Jobs] Cache SET: %s", cacheKey)
		}
	}

	return out, nil
}

var _ JobSearchUsecase = (*JobSearch)(nil)
