package post

import (
	"time"

	"github.com/google/uuid"
)

// MaxContentLength is the hard cap on post content, counted in characters.
const MaxContentLength = 3000

const TypeUser = "user"

type Post struct {
	ID            uuid.UUID
	AuthorID      uuid.UUID
	Content       string
	MediaURLs     []string
	PostType      string
	SourceID      *uuid.UUID
	LikesCount    int
	CommentsCount int
	SharesCount   int
	ViewsCount    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Author carries the join fields the feed needs alongside each post.
type Author struct {
	ID        uuid.UUID
	Name      string
	AvatarURL string
}
