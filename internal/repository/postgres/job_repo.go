package postgres

import (
	"context"
	"go-jobboard-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const jobColumns = `id, title, company, location, description, requirements, salary, type,
	posted_by, posted_date, is_active, created_at, updated_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	query := `INSERT INTO jobs (id, title, company, location, description, requirements, salary, type, posted_by, posted_date, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Description, pq.Array(job.Requirements),
		job.Salary, string(job.Type), job.PostedBy, job.PostedDate, job.IsActive,
		job.CreatedAt, job.UpdatedAt,
	)
	return translateError(err)
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	job, err := scanJob(r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		return nil, translateError(err)
	}
	return job, nil
}

func (r *jobRepo) List(ctx context.Context) ([]domain.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

// Update writes the mutable fields. Owner and posting date never change.
func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs
              SET title = $2, company = $3, location = $4, description = $5, requirements = $6,
                  salary = $7, type = $8, is_active = $9, updated_at = $10
              WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Company, job.Location, job.Description, pq.Array(job.Requirements),
		job.Salary, string(job.Type), job.IsActive, job.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var (
		job     domain.Job
		jobType string
	)
	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Description,
		pq.Array(&job.Requirements), &job.Salary, &jobType,
		&job.PostedBy, &job.PostedDate, &job.IsActive, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	job.Type = domain.JobType(jobType)
	return &job, nil
}
