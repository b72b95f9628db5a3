package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"linkup/internal/domain/post"
	"linkup/internal/repository"

	"github.com/google/uuid"
)

type CreatePostInput struct {
	Content   string
	MediaURLs []string
	PostType  string
	SourceID  *uuid.UUID
}

type PostUsecase interface {
	CreatePost(ctx context.Context, authorID uuid.UUID, in CreatePostInput) (post.Post, error)
}

type Posts struct {
	posts repository.PostRepository
}

func NewPostUsecase(posts repository.PostRepository) *Posts {
	return &Posts{posts: posts}
}

func (u *Posts) CreatePost(ctx context.Context, authorID uuid.UUID, in CreatePostInput) (post.Post, error) {
	if authorID == uuid.Nil {
		return post.Post{}, ErrUnauthorized
	}

	if strings.TrimSpace(in.Content) == "" {
		return post.Post{}, ErrEmptyPostContent
	}
	if utf8.RuneCountInString(in.Content) > post.MaxContentLength {
		return post.Post{}, ErrPostContentTooLong
	}

	postType := strings.TrimSpace(in.PostType)
	if postType == "" {
		postType = post.TypeUser
	}

	p := post.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Content:   in.Content,
		MediaURLs: in.MediaURLs,
		PostType:  postType,
		SourceID:  in.SourceID,
	}

	if err := u.posts.Insert(ctx, &p); err != nil {
		return post.Post{}, ErrInternal
	}

	return p, nil
}

var _ PostUsecase = (*Posts)(nil)
