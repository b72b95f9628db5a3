package repository

import (
	"context"
	"fmt"
	"strings"

	"linkup/internal/database"
	"linkup/internal/domain/job"
)

// JobSearchFilter combines the optional search filters. Zero values mean
// "no filter"; RemoteWork uses a pointer so false is a real filter.
type JobSearchFilter struct {
	Query      string
	Location   string
	JobType    string
	RemoteWork *bool
}

type JobRepository interface {
	Search(ctx context.Context, f JobSearchFilter, limit, offset int) ([]job.Job, error)
	CountSearch(ctx context.Context, f JobSearchFilter) (int, error)
	ListActive(ctx context.Context, limit int) ([]job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `id, title, company_id, posted_by, description,
	COALESCE(requirements, ''), salary_min, salary_max, COALESCE(location, ''),
	job_type, COALESCE(experience_level, ''), remote_work, status,
	applications_count, views_count, created_at, updated_at`

// buildSearchWhere composes the WHERE clause in a fixed order
// (status, text, location, type, remote flag) so the generated SQL is
// predictable. Placeholders start at $1.
func buildSearchWhere(f JobSearchFilter) (string, []any) {
	clauses := []string{"status = $1"}
	args := []any{job.StatusActive}

	next := func() int { return len(args) + 1 }

	if q := strings.TrimSpace(f.Query); q != "" {
		n := next()
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
		args = append(args, "%"+q+"%")
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		clauses = append(clauses, fmt.Sprintf("location ILIKE $%d", next()))
		args = append(args, "%"+loc+"%")
	}
	if jt := strings.TrimSpace(f.JobType); jt != "" {
		clauses = append(clauses, fmt.Sprintf("job_type = $%d", next()))
		args = append(args, jt)
	}
	if f.RemoteWork != nil {
		clauses = append(clauses, fmt.Sprintf("remote_work = $%d", next()))
		args = append(args, *f.RemoteWork)
	}

	return strings.Join(clauses, " AND "), args
}

func (r *PostgresJobRepository) Search(ctx context.Context, f JobSearchFilter, limit, offset int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	where, args := buildSearchWhere(f)
	query := fmt.Sprintf(
		`SELECT %s FROM jobs WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, where, len(args)+1, len(args)+2,
	)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

func (r *PostgresJobRepository) CountSearch(ctx context.Context, f JobSearchFilter) (int, error) {
	where, args := buildSearchWhere(f)
	row := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(1) FROM jobs WHERE %s`, where), args...)

	var c int
	if err := row.Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresJobRepository) ListActive(ctx context.Context, limit int) ([]job.Job, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM jobs WHERE status = $1 ORDER BY created_at DESC LIMIT $2`, jobColumns),
		job.StatusActive, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

func scanJobs(rows database.Rows) ([]job.Job, error) {
	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(
			&j.ID, &j.Title, &j.CompanyID, &j.PostedBy, &j.Description,
			&j.Requirements, &j.SalaryMin, &j.SalaryMax, &j.Location,
			&j.JobType, &j.ExperienceLevel, &j.RemoteWork, &j.Status,
			&j.ApplicationsCount, &j.ViewsCount, &j.CreatedAt, &j.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ JobRepository = (*PostgresJobRepository)(nil)
