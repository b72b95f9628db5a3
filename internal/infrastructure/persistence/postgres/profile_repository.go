package postgres

import (
	"context"
	"database/sql"

	"linkup/internal/database"
	"linkup/internal/domain/user"

	"github.com/google/uuid"
)

// ProfileRepository reads profiles through prepared statements on the
// database/sql bridge of the pgx pool.
type ProfileRepository struct {
	stmtGetByID *sql.Stmt
}

func NewProfileRepository(db database.DB) (*ProfileRepository, error) {
	r := &ProfileRepository{}

	var err error
	r.stmtGetByID, err = db.SQLDB().PrepareContext(
		context.Background(),
		`SELECT id, email, name, COALESCE(headline, ''), COALESCE(about, ''),
		        COALESCE(location, ''), COALESCE(website, ''),
		        COALESCE(avatar_url, ''), COALESCE(banner_url, ''),
		        connections_count, is_verified, is_premium, created_at, updated_at
		 FROM profiles WHERE id = $1`,
	)
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (r *ProfileRepository) Close() error {
	if r == nil || r.stmtGetByID == nil {
		return nil
	}
	return r.stmtGetByID.Close()
}

func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.stmtGetByID.QueryRowContext(ctx, id)

	var u user.User
	if err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Headline, &u.About,
		&u.Location, &u.Website, &u.AvatarURL, &u.BannerURL,
		&u.ConnectionsCount, &u.IsVerified, &u.IsPremium,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
