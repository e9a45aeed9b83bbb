package postgres

import (
	"context"
	"errors"
	"fmt"
	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// applications.job_id deliberately has no foreign key: deleting a job
// leaves its applications in place.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id                     TEXT PRIMARY KEY,
	name                   TEXT NOT NULL,
	email                  TEXT NOT NULL,
	password_hash          TEXT NOT NULL,
	role                   TEXT NOT NULL CHECK (role IN ('jobseeker', 'employer')),
	company                TEXT NOT NULL DEFAULT '',
	title                  TEXT NOT NULL DEFAULT '',
	skills                 TEXT[] NOT NULL DEFAULT '{}',
	about                  TEXT NOT NULL DEFAULT '',
	reset_password_token   TEXT,
	reset_password_expires TIMESTAMPTZ,
	created_at             TIMESTAMPTZ NOT NULL,
	updated_at             TIMESTAMPTZ NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS users_email_key ON users (email);
CREATE INDEX IF NOT EXISTS users_reset_password_token_idx ON users (reset_password_token);

CREATE TABLE IF NOT EXISTS jobs (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	company      TEXT NOT NULL,
	location     TEXT NOT NULL,
	description  TEXT NOT NULL,
	requirements TEXT[] NOT NULL DEFAULT '{}',
	salary       TEXT NOT NULL DEFAULT '',
	type         TEXT NOT NULL CHECK (type IN ('full-time', 'part-time', 'contract', 'internship')),
	posted_by    TEXT NOT NULL REFERENCES users (id),
	posted_date  TIMESTAMPTZ NOT NULL,
	is_active    BOOLEAN NOT NULL DEFAULT TRUE,
	created_at   TIMESTAMPTZ NOT NULL,
	updated_at   TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS jobs_created_at_idx ON jobs (created_at DESC, id DESC);

CREATE TABLE IF NOT EXISTS applications (
	id             TEXT PRIMARY KEY,
	job_id         TEXT NOT NULL,
	applicant_id   TEXT NOT NULL REFERENCES users (id),
	applicant_name TEXT NOT NULL,
	cover_letter   TEXT NOT NULL DEFAULT '',
	resume         TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL CHECK (status IN ('pending', 'reviewed', 'interview', 'hired', 'rejected')),
	applied_date   TIMESTAMPTZ NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	updated_at     TIMESTAMPTZ NOT NULL,
	CONSTRAINT applications_job_applicant_key UNIQUE (job_id, applicant_id)
);

CREATE INDEX IF NOT EXISTS applications_applicant_idx ON applications (applicant_id, created_at DESC);
`

// Migrate applies the schema. Every statement is idempotent.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}
	return nil
}

// translateError maps driver errors onto the domain storage errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s", domain.ErrDuplicate, pgErr.ConstraintName)
	}
	return err
}
