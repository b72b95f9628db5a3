package dto

import (
	"time"

	"linkup/internal/pkg/pagination"
	"linkup/internal/repository"

	"github.com/google/uuid"
)

type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url"`
}

type FeedPostResponse struct {
	ID            uuid.UUID      `json:"id"`
	Content       string         `json:"content"`
	MediaURLs     []string       `json:"media_urls"`
	PostType      string         `json:"post_type"`
	LikesCount    int            `json:"likes_count"`
	CommentsCount int            `json:"comments_count"`
	SharesCount   int            `json:"shares_count"`
	CreatedAt     string         `json:"created_at"`
	Author        AuthorResponse `json:"author"`
}

type FeedResponse struct {
	Posts      []FeedPostResponse  `json:"posts"`
	Pagination pagination.Envelope `json:"pagination"`
}

func NewFeedResponse(rows []repository.FeedRow, env pagination.Envelope) FeedResponse {
	posts := make([]FeedPostResponse, 0, len(rows))
	for _, r := range rows {
		mediaURLs := r.Post.MediaURLs
		if mediaURLs == nil {
			mediaURLs = []string{}
		}

		posts = append(posts, FeedPostResponse{
			ID:            r.Post.ID,
			Content:       r.Post.Content,
			MediaURLs:     mediaURLs,
			PostType:      r.Post.PostType,
			LikesCount:    r.Post.LikesCount,
			CommentsCount: r.Post.CommentsCount,
			SharesCount:   r.Post.SharesCount,
			CreatedAt:     r.Post.CreatedAt.UTC().Format(time.RFC3339),
			Author: AuthorResponse{
				ID:        r.Author.ID,
				Name:      r.Author.Name,
				AvatarURL: r.Author.AvatarURL,
			},
		})
	}

	return FeedResponse{Posts: posts, Pagination: env}
}
