package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"linkup/internal/domain/post"
	"linkup/internal/repository"

	"github.com/google/uuid"
)

type mockPostRepo struct {
	rows []repository.FeedRow
	err  error

	gotAuthorIDs []uuid.UUID
	gotLimit     int
	gotOffset    int

	insertErr error
	inserted  *post.Post
}

func (m *mockPostRepo) ListFeed(_ context.Context, authorIDs []uuid.UUID, limit, offset int) ([]repository.FeedRow, error) {
	m.gotAuthorIDs = authorIDs
	m.gotLimit = limit
	m.gotOffset = offset
	if m.err != nil {
		return nil, m.err
	}

	if authorIDs == nil {
		return m.rows, nil
	}
	allowed := make(map[uuid.UUID]bool, len(authorIDs))
	for _, id := range authorIDs {
		allowed[id] = true
	}
	out := make([]repository.FeedRow, 0, len(m.rows))
	for _, r := range m.rows {
		if allowed[r.Post.AuthorID] {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *mockPostRepo) CountFeed(_ context.Context, authorIDs []uuid.UUID) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if authorIDs == nil {
		return len(m.rows), nil
	}
	allowed := make(map[uuid.UUID]bool, len(authorIDs))
	for _, id := range authorIDs {
		allowed[id] = true
	}
	count := 0
	for _, r := range m.rows {
		if allowed[r.Post.AuthorID] {
			count++
		}
	}
	return count, nil
}

func (m *mockPostRepo) Insert(_ context.Context, p *post.Post) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	m.inserted = p
	return nil
}

type mockConnectionRepo struct {
	peers []uuid.UUID
	err   error
}

func (m *mockConnectionRepo) AcceptedPeerIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return m.peers, m.err
}

func feedRow(authorID uuid.UUID) repository.FeedRow {
	return repository.FeedRow{
		Post:   post.Post{ID: uuid.New(), AuthorID: authorID, Content: "hello"},
		Author: post.Author{ID: authorID, Name: "someone"},
	}
}

func TestFeedUsecase_AllTypeHasNoAuthorRestriction(t *testing.T) {
	posts := &mockPostRepo{rows: []repository.FeedRow{feedRow(uuid.New()), feedRow(uuid.New())}}
	uc := NewFeedUsecase(posts, &mockConnectionRepo{})

	res, err := uc.GetFeed(context.Background(), uuid.New(), FeedParams{Type: FeedTypeAll})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts.gotAuthorIDs != nil {
		t.Fatalf("expected no author restriction, got %v", posts.gotAuthorIDs)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}
}

func TestFeedUsecase_ConnectionsRestrictsAuthors(t *testing.T) {
	me := uuid.New()
	peer := uuid.New()
	stranger := uuid.New()

	posts := &mockPostRepo{rows: []repository.FeedRow{
		feedRow(me),
		feedRow(peer),
		feedRow(stranger),
	}}
	uc := NewFeedUsecase(posts, &mockConnectionRepo{peers: []uuid.UUID{peer}})

	res, err := uc.GetFeed(context.Background(), me, FeedParams{Type: FeedTypeConnections})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, it := range res.Items {
		if it.Post.AuthorID == stranger {
			t.Fatalf("connections feed leaked a post from a non-peer author")
		}
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected own + peer posts (2), got %d", len(res.Items))
	}
	if res.Pagination.Total != 2 {
		t.Fatalf("expected total=2, got %d", res.Pagination.Total)
	}
}

func TestFeedUsecase_PaginationEnvelope(t *testing.T) {
	rows := make([]repository.FeedRow, 0, 45)
	for i := 0; i < 45; i++ {
		rows = append(rows, feedRow(uuid.New()))
	}
	posts := &mockPostRepo{rows: rows}
	uc := NewFeedUsecase(posts, &mockConnectionRepo{})

	res, err := uc.GetFeed(context.Background(), uuid.New(), FeedParams{Page: 2, Limit: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts.gotOffset != 20 {
		t.Fatalf("expected offset 20, got %d", posts.gotOffset)
	}
	if res.Pagination.TotalPages != 3 {
		t.Fatalf("expected total_pages=3 for total=45 limit=20, got %d", res.Pagination.TotalPages)
	}
}

func TestFeedUsecase_DefaultsApplied(t *testing.T) {
	posts := &mockPostRepo{}
	uc := NewFeedUsecase(posts, &mockConnectionRepo{})

	res, err := uc.GetFeed(context.Background(), uuid.New(), FeedParams{Page: 0, Limit: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts.gotLimit != 20 {
		t.Fatalf("expected default limit 20, got %d", posts.gotLimit)
	}
	if res.Pagination.Page != 1 || res.Pagination.Limit != 20 {
		t.Fatalf("unexpected envelope: %+v", res.Pagination)
	}
}

func TestFeedUsecase_ConnectionLookupError(t *testing.T) {
	uc := NewFeedUsecase(&mockPostRepo{}, &mockConnectionRepo{err: errors.New("boom")})

	_, err := uc.GetFeed(context.Background(), uuid.New(), FeedParams{Type: FeedTypeConnections})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestFeedUsecase_NilUser(t *testing.T) {
	uc := NewFeedUsecase(&mockPostRepo{}, &mockConnectionRepo{})

	_, err := uc.GetFeed(context.Background(), uuid.Nil, FeedParams{})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
