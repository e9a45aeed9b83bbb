package postgres

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const userColumns = `id, name, email, password_hash, role, company, title, skills, about,
	reset_password_token, reset_password_expires, created_at, updated_at`

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	query := `INSERT INTO users (id, name, email, password_hash, role, company, title, skills, about, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, string(user.Role),
		user.Company, user.Title, pq.Array(user.Skills), user.About,
		user.CreatedAt, user.UpdatedAt,
	)
	return translateError(err)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *userRepo) GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	return r.getOne(ctx,
		`SELECT `+userColumns+` FROM users WHERE reset_password_token = $1 AND reset_password_expires > $2`,
		tokenHash, now)
}

func (r *userRepo) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users`
	var args []interface{}
	if filter.Role != "" {
		query += ` WHERE role = $1`
		args = append(args, string(filter.Role))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

func (r *userRepo) UpdateProfile(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $2, company = $3, title = $4, skills = $5, about = $6, updated_at = $7 WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Company, user.Title, pq.Array(user.Skills), user.About, user.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error {
	query := `UPDATE users SET reset_password_token = $2, reset_password_expires = $3, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, tokenHash, expires)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) ResetPassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE users
              SET password_hash = $2, reset_password_token = NULL, reset_password_expires = NULL, updated_at = NOW()
              WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepo) getOne(ctx context.Context, query string, args ...interface{}) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user       domain.User
		role       string
		resetToken *string
	)
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &role,
		&user.Company, &user.Title, pq.Array(&user.Skills), &user.About,
		&resetToken, &user.ResetPasswordExpires, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	if resetToken != nil {
		user.ResetPasswordToken = *resetToken
	}
	return &user, nil
}
