package usecase

import (
	"context"

	"linkup/internal/pkg/pagination"
	"linkup/internal/repository"

	"github.com/google/uuid"
)

const (
	FeedTypeAll         = "all"
	FeedTypeConnections = "connections"
)

type FeedParams struct {
	Page  int
	Limit int
	Type  string
}

type FeedResult struct {
	Items      []repository.FeedRow
	Pagination pagination.Envelope
}

type FeedUsecase interface {
	GetFeed(ctx context.Context, userID uuid.UUID, params FeedParams) (FeedResult, error)
}

type Feed struct {
	posts       repository.PostRepository
	connections repository.ConnectionRepository
}

func NewFeedUsecase(posts repository.PostRepository, connections repository.ConnectionRepository) *Feed {
	return &Feed{posts: posts, connections: connections}
}

func (u *Feed) GetFeed(ctx context.Context, userID uuid.UUID, params FeedParams) (FeedResult, error) {
	if userID == uuid.Nil {
		return FeedResult{}, ErrUnauthorized
	}

	p := pagination.Normalize(params.Page, params.Limit)

	// nil means no author restriction; the connections feed always pins the
	// set to accepted peers plus the user themself.
	var authorIDs []uuid.UUID
	if params.Type == FeedTypeConnections {
		peers, err := u.connections.AcceptedPeerIDs(ctx, userID)
		if err != nil {
			return FeedResult{}, ErrInternal
		}
		authorIDs = append(peers, userID)
	}

	items, err := u.posts.ListFeed(ctx, authorIDs, p.Limit, p.Offset())
	if err != nil {
		return FeedResult{}, ErrInternal
	}

	total, err := u.posts.CountFeed(ctx, authorIDs)
	if err != nil {
		return FeedResult{}, ErrInternal
	}

	return FeedResult{Items: items, Pagination: p.Envelope(total)}, nil
}

var _ FeedUsecase = (*Feed)(nil)
