package memory

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/google/uuid"
)

type userRepo struct {
	store *Store
}

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	stored := *user
	stored.Skills = cloneStrings(user.Skills)
	stored.ResetPasswordExpires = cloneTime(user.ResetPasswordExpires)
	s.users[user.ID] = stored
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyUser(user), nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Email == email {
			return copyUser(user), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepo) GetByResetToken(_ context.Context, tokenHash string, now time.Time) (*domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if tokenHash != "" && user.ResetPasswordToken == tokenHash &&
			user.ResetPasswordExpires != nil && user.ResetPasswordExpires.After(now) {
			return copyUser(user), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepo) List(_ context.Context, filter domain.UserFilter) ([]domain.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []domain.User{}
	for _, user := range s.users {
		if filter.Role != "" && user.Role != filter.Role {
			continue
		}
		users = append(users, *copyUser(user))
	}
	sortUsers(users)
	return users, nil
}

func (r *userRepo) UpdateProfile(_ context.Context, user *domain.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Name = user.Name
	stored.Company = user.Company
	stored.Title = user.Title
	stored.Skills = cloneStrings(user.Skills)
	stored.About = user.About
	stored.UpdatedAt = user.UpdatedAt
	s.users[user.ID] = stored
	return nil
}

func (r *userRepo) SetResetToken(_ context.Context, id, tokenHash string, expires time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	stored.ResetPasswordToken = tokenHash
	stored.ResetPasswordExpires = &expires
	s.users[id] = stored
	return nil
}

func (r *userRepo) ResetPassword(_ context.Context, id, passwordHash string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	stored.PasswordHash = passwordHash
	stored.ResetPasswordToken = ""
	stored.ResetPasswordExpires = nil
	stored.UpdatedAt = time.Now().UTC()
	s.users[id] = stored
	return nil
}

func copyUser(user domain.User) *domain.User {
	user.Skills = cloneStrings(user.Skills)
	user.ResetPasswordExpires = cloneTime(user.ResetPasswordExpires)
	return &user
}
