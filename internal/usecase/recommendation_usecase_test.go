package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"linkup/internal/domain/job"
	"linkup/internal/domain/user"
	"linkup/internal/infrastructure/ai"

	"github.com/google/uuid"
)

type mockProfileReader struct {
	profile user.User
	err     error
}

func (m mockProfileReader) GetByID(context.Context, uuid.UUID) (user.User, error) {
	return m.profile, m.err
}

type mockCompanyRepo struct {
	names map[uuid.UUID]string
}

func (m mockCompanyRepo) NamesByIDs(context.Context, []uuid.UUID) (map[uuid.UUID]string, error) {
	return m.names, nil
}

type mockAIClient struct {
	completion ai.Completion
	err        error

	gotPrompt string
}

func (m *mockAIClient) Complete(_ context.Context, prompt string) (ai.Completion, error) {
	m.gotPrompt = prompt
	return m.completion, m.err
}

func activeJobs(n int) []job.Job {
	out := make([]job.Job, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, job.Job{ID: uuid.New(), Title: "Engineer", Status: job.StatusActive})
	}
	return out
}

func someProfile() user.User {
	return user.User{ID: uuid.New(), Name: "Ada", Headline: "Backend engineer", Location: "Berlin"}
}

func TestGetRecommendations_UserNotFound(t *testing.T) {
	uc := NewRecommendationUsecase(
		mockProfileReader{err: user.ErrNotFound},
		&mockJobRepo{}, mockCompanyRepo{}, nil, nil,
	)

	_, err := uc.GetRecommendations(context.Background(), uuid.New(), 10)
	if !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected user.ErrNotFound, got %v", err)
	}
}

func TestGetRecommendations_NoJobs(t *testing.T) {
	uc := NewRecommendationUsecase(
		mockProfileReader{profile: someProfile()},
		&mockJobRepo{}, mockCompanyRepo{}, &mockAIClient{}, nil,
	)

	res, err := uc.GetRecommendations(context.Background(), uuid.New(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 0 {
		t.Fatalf("expected empty recommendations, got %d", len(res.Items))
	}
	if res.Message != "No jobs available" {
		t.Fatalf("expected %q, got %q", "No jobs available", res.Message)
	}
}

func TestGetRecommendations_AIFailureFallsBack(t *testing.T) {
	uc := NewRecommendationUsecase(
		mockProfileReader{profile: someProfile()},
		&mockJobRepo{jobs: activeJobs(8)},
		mockCompanyRepo{},
		&mockAIClient{err: errors.New("provider unreachable")},
		nil,
	)

	res, err := uc.GetRecommendations(context.Background(), uuid.New(), 5)
	if err != nil {
		t.Fatalf("fallback must never surface the provider error: %v", err)
	}
	if len(res.Items) != 5 {
		t.Fatalf("expected limit items on fallback, got %d", len(res.Items))
	}
	for _, it := range res.Items {
		if it.MatchScore != 75 {
			t.Fatalf("expected fallback score 75, got %d", it.MatchScore)
		}
		if len(it.MatchReasons) != 1 || it.MatchReasons[0] != "General match" {
			t.Fatalf("expected generic reason, got %v", it.MatchReasons)
		}
	}
}

func TestGetRecommendations_NilClientFallsBack(t *testing.T) {
	uc := NewRecommendationUsecase(
		mockProfileReader{profile: someProfile()},
		&mockJobRepo{jobs: activeJobs(3)},
		mockCompanyRepo{}, nil, nil,
	)

	res, err := uc.GetRecommendations(context.Background(), uuid.New(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(res.Items))
	}
	if res.Items[0].MatchScore != 75 {
		t.Fatalf("expected fallback score 75, got %d", res.Items[0].MatchScore)
	}
}

func TestGetRecommendations_AISuccess(t *testing.T) {
	client := &mockAIClient{completion: ai.Completion{Content: `[{"jobId":"x"}]`}}
	uc := NewRecommendationUsecase(
		mockProfileReader{profile: someProfile()},
		&mockJobRepo{jobs: activeJobs(12)},
		mockCompanyRepo{}, client, nil,
	)

	res, err := uc.GetRecommendations(context.Background(), uuid.New(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(res.Items))
	}
	for _, it := range res.Items {
		if it.MatchScore != 85 {
			t.Fatalf("expected score 85 on the success path, got %d", it.MatchScore)
		}
	}
	if client.gotPrompt == "" {
		t.Fatal("expected the AI client to receive a prompt")
	}
}

func TestBuildRecommendationPrompt(t *testing.T) {
	companyID := uuid.New()
	jobs := []job.Job{
		{ID: uuid.New(), Title: "Go Developer", CompanyID: &companyID, Location: "Remote"},
		{ID: uuid.New(), Title: "SRE"},
	}
	names := map[uuid.UUID]string{companyID: "Acme"}

	prompt := BuildRecommendationPrompt(someProfile(), jobs, names, 5)

	for _, want := range []string{
		"- Name: Ada",
		"- Headline: Backend engineer",
		"Recommend the top 5 jobs",
		"- Go Developer at Acme in Remote",
		"- SRE at Not specified in Not specified",
		`"matchScore"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildRecommendationPrompt_CapsAtTenJobs(t *testing.T) {
	prompt := BuildRecommendationPrompt(someProfile(), activeJobs(30), nil, 10)

	if got := strings.Count(prompt, "- Engineer at "); got != 10 {
		t.Fatalf("expected 10 job lines, got %d", got)
	}
}

func TestGetRecommendations_BlankProfileFields(t *testing.T) {
	client := &mockAIClient{}
	uc := NewRecommendationUsecase(
		mockProfileReader{profile: user.User{ID: uuid.New(), Name: "Bo"}},
		&mockJobRepo{jobs: activeJobs(1)},
		mockCompanyRepo{}, client, nil,
	)

	if _, err := uc.GetRecommendations(context.Background(), uuid.New(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(client.gotPrompt, "- Headline: Not specified") {
		t.Fatalf("blank headline should render as Not specified:\n%s", client.gotPrompt)
	}
}
