package dto

import (
	"time"

	"linkup/internal/domain/post"

	"github.com/google/uuid"
)

type PostResponse struct {
	ID            uuid.UUID `json:"id"`
	Content       string    `json:"content"`
	MediaURLs     []string  `json:"media_urls"`
	PostType      string    `json:"post_type"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     string    `json:"created_at"`
}

type CreatePostResponse struct {
	Post PostResponse `json:"post"`
}

func NewCreatePostResponse(p post.Post) CreatePostResponse {
	mediaURLs := p.MediaURLs
	if mediaURLs == nil {
		mediaURLs = []string{}
	}

	return CreatePostResponse{Post: PostResponse{
		ID:            p.ID,
		Content:       p.Content,
		MediaURLs:     mediaURLs,
		PostType:      p.PostType,
		LikesCount:    p.LikesCount,
		CommentsCount: p.CommentsCount,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
	}}
}
