package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestCreatePost_EmptyContent(t *testing.T) {
	uc := NewPostUsecase(&mockPostRepo{})

	_, err := uc.CreatePost(context.Background(), uuid.New(), CreatePostInput{Content: ""})
	if !errors.Is(err, ErrEmptyPostContent) {
		t.Fatalf("expected ErrEmptyPostContent, got %v", err)
	}
}

func TestCreatePost_WhitespaceOnlyContent(t *testing.T) {
	uc := NewPostUsecase(&mockPostRepo{})

	_, err := uc.CreatePost(context.Background(), uuid.New(), CreatePostInput{Content: "   \n\t  "})
	if !errors.Is(err, ErrEmptyPostContent) {
		t.Fatalf("expected ErrEmptyPostContent, got %v", err)
	}
}

func TestCreatePost_ContentAtLimit(t *testing.T) {
	repo := &mockPostRepo{}
	uc := NewPostUsecase(repo)

	p, err := uc.CreatePost(context.Background(), uuid.New(), CreatePostInput{
		Content: strings.Repeat("a", 3000),
	})
	if err != nil {
		t.Fatalf("content of exactly 3000 characters must succeed: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Fatal("expected a server-assigned id")
	}
	if p.CreatedAt.IsZero() {
		t.Fatal("expected a server-assigned timestamp")
	}
	if repo.inserted == nil {
		t.Fatal("post was not persisted")
	}
}

func TestCreatePost_ContentOverLimit(t *testing.T) {
	uc := NewPostUsecase(&mockPostRepo{})

	_, err := uc.CreatePost(context.Background(), uuid.New(), CreatePostInput{
		Content: strings.Repeat("a", 3001),
	})
	if !errors.Is(err, ErrPostContentTooLong) {
		t.Fatalf("expected ErrPostContentTooLong, got %v", err)
	}
}

func TestCreatePost_DefaultType(t *testing.T) {
	repo := &mockPostRepo{}
	uc := NewPostUsecase(repo)

	p, err := uc.CreatePost(context.Background(), uuid.New(), CreatePostInput{Content: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.PostType != "user" {
		t.Fatalf("expected default post type %q, got %q", "user", p.PostType)
	}
	if p.LikesCount != 0 || p.CommentsCount != 0 || p.SharesCount != 0 || p.ViewsCount != 0 {
		t.Fatalf("expected zeroed counters, got %+v", p)
	}
}

func TestCreatePost_RepoError(t *testing.T) {
	uc := NewPostUsecase(&mockPostRepo{insertErr: errors.New("db down")})

	_, err := uc.CreatePost(context.Background(), uuid.New(), CreatePostInput{Content: "hello"})
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
