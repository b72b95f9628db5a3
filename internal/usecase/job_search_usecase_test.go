package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"linkup/internal/domain/job"
	"linkup/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	jobs []job.Job
	err  error

	gotFilter repository.JobSearchFilter
	gotLimit  int
	gotOffset int
}

func (m *mockJobRepo) Search(_ context.Context, f repository.JobSearchFilter, limit, offset int) ([]job.Job, error) {
	m.gotFilter = f
	m.gotLimit = limit
	m.gotOffset = offset
	return m.jobs, m.err
}

func (m *mockJobRepo) CountSearch(context.Context, repository.JobSearchFilter) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return len(m.jobs), nil
}

func (m *mockJobRepo) ListActive(context.Context, int) ([]job.Job, error) {
	return m.jobs, m.err
}

type mapCache struct {
	data map[string][]byte
	sets int
	hits int
}

func newMapCache() *mapCache { return &mapCache{data: make(map[string][]byte)} }

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = b
	c.sets++
	return nil
}

func TestSearchJobs_FilterPassthrough(t *testing.T) {
	repo := &mockJobRepo{}
	uc := NewJobSearchUsecase(repo, nil, nil)

	remote := true
	_, err := uc.SearchJobs(context.Background(), JobSearchParams{
		Query:      "engineer",
		Location:   "Berlin",
		JobType:    "full-time",
		RemoteWork: &remote,
		Page:       3,
		Limit:      10,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.gotFilter.Query != "engineer" || repo.gotFilter.Location != "Berlin" ||
		repo.gotFilter.JobType != "full-time" {
		t.Fatalf("filter not passed through: %+v", repo.gotFilter)
	}
	if repo.gotFilter.RemoteWork == nil || !*repo.gotFilter.RemoteWork {
		t.Fatal("remote_work filter lost")
	}
	if repo.gotLimit != 10 || repo.gotOffset != 20 {
		t.Fatalf("expected limit=10 offset=20, got limit=%d offset=%d", repo.gotLimit, repo.gotOffset)
	}
}

func TestSearchJobs_Envelope(t *testing.T) {
	repo := &mockJobRepo{jobs: []job.Job{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}}
	uc := NewJobSearchUsecase(repo, nil, nil)

	res, err := uc.SearchJobs(context.Background(), JobSearchParams{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Pagination.Total != 3 || res.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected envelope: %+v", res.Pagination)
	}
}

func TestSearchJobs_CacheRoundTrip(t *testing.T) {
	repo := &mockJobRepo{jobs: []job.Job{{ID: uuid.New(), Title: "Backend Engineer"}}}
	cache := newMapCache()
	uc := NewJobSearchUsecase(repo, cache, nil)

	params := JobSearchParams{Query: "backend", Page: 1, Limit: 20}

	first, err := uc.SearchJobs(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache set, got %d", cache.sets)
	}

	second, err := uc.SearchJobs(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.hits != 1 {
		t.Fatalf("expected a cache hit on the second call, got %d", cache.hits)
	}
	if len(second.Jobs) != len(first.Jobs) || second.Pagination != first.Pagination {
		t.Fatalf("cached result differs: %+v vs %+v", second, first)
	}
}

func TestSearchJobs_RepoError(t *testing.T) {
	uc := NewJobSearchUsecase(&mockJobRepo{err: errors.New("db down")}, nil, nil)

	_, err := uc.SearchJobs(context.Background(), JobSearchParams{})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobSearchCacheKey_Distinct(t *testing.T) {
	remoteTrue := true
	remoteFalse := false

	a := JobSearchCacheKey(JobSearchParams{Query: "go dev", Page: 1, Limit: 20})
	b := JobSearchCacheKey(JobSearchParams{Query: "go dev", Page: 2, Limit: 20})
	c := JobSearchCacheKey(JobSearchParams{Query: "go dev", Page: 1, Limit: 20, RemoteWork: &remoteTrue})
	d := JobSearchCacheKey(JobSearchParams{Query: "go dev", Page: 1, Limit: 20, RemoteWork: &remoteFalse})

	keys := map[string]bool{a: true, b: true, c: true, d: true}
	if len(keys) != 4 {
		t.Fatalf("expected 4 distinct keys, got %d: %v", len(keys), keys)
	}
}
