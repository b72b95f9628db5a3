package repository

import (
	"context"

	"linkup/internal/database"
	"linkup/internal/domain/post"

	"github.com/google/uuid"
)

// FeedRow is a post joined with the author fields the feed response needs.
type FeedRow struct {
	Post   post.Post
	Author post.Author
}

type PostRepository interface {
	ListFeed(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]FeedRow, error)
	CountFeed(ctx context.Context, authorIDs []uuid.UUID) (int, error)
	Insert(ctx context.Context, p *post.Post) error
}

type PostgresPostRepository struct {
	db database.DB
}

func NewPostgresPostRepository(db database.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

const feedSelect = `
	SELECT p.id, p.author_id, p.content, p.media_urls, p.post_type, p.source_id,
	       p.likes_count, p.comments_count, p.shares_count, p.views_count,
	       p.created_at, p.updated_at,
	       u.id, u.name, COALESCE(u.avatar_url, '')
	FROM posts p
	JOIN profiles u ON u.id = p.author_id`

// ListFeed returns posts newest first. A nil authorIDs slice means no author
// restriction; an empty non-nil slice matches nothing.
func (r *PostgresPostRepository) ListFeed(ctx context.Context, authorIDs []uuid.UUID, limit, offset int) ([]FeedRow, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	var (
		rows database.Rows
		err  error
	)
	if authorIDs == nil {
		rows, err = r.db.Query(ctx,
			feedSelect+`
			ORDER BY p.created_at DESC
			LIMIT $1 OFFSET $2`,
			limit, offset,
		)
	} else {
		rows, err = r.db.Query(ctx,
			feedSelect+`
			WHERE p.author_id = ANY($1)
			ORDER BY p.created_at DESC
			LIMIT $2 OFFSET $3`,
			authorIDs, limit, offset,
		)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FeedRow, 0)
	for rows.Next() {
		var fr FeedRow
		var mediaURLs []string
		if err := rows.Scan(
			&fr.Post.ID, &fr.Post.AuthorID, &fr.Post.Content, &mediaURLs,
			&fr.Post.PostType, &fr.Post.SourceID,
			&fr.Post.LikesCount, &fr.Post.CommentsCount, &fr.Post.SharesCount, &fr.Post.ViewsCount,
			&fr.Post.CreatedAt, &fr.Post.UpdatedAt,
			&fr.Author.ID, &fr.Author.Name, &fr.Author.AvatarURL,
		); err != nil {
			return nil, err
		}
		fr.Post.MediaURLs = mediaURLs
		out = append(out, fr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPostRepository) CountFeed(ctx context.Context, authorIDs []uuid.UUID) (int, error) {
	var row database.Row
	if authorIDs == nil {
		row = r.db.QueryRow(ctx, `SELECT COUNT(1) FROM posts`)
	} else {
		row = r.db.QueryRow(ctx, `SELECT COUNT(1) FROM posts WHERE author_id = ANY($1)`, authorIDs)
	}

	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

// Insert persists a new post and fills in the server-assigned id and
// timestamps.
func (r *PostgresPostRepository) Insert(ctx context.Context, p *post.Post) error {
	row := r.db.QueryRow(ctx,
		`INSERT INTO posts (id, author_id, content, media_urls, post_type, source_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		p.ID, p.AuthorID, p.Content, p.MediaURLs, p.PostType, p.SourceID,
	)
	return row.Scan(&p.CreatedAt, &p.UpdatedAt)
}

var _ PostRepository = (*PostgresPostRepository)(nil)
