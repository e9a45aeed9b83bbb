package usecase

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"time"
)

type userUsecase struct {
	userRepo domain.UserRepository
	now      func() time.Time
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (u *userUsecase) GetSelf(ctx context.Context, actor domain.Identity) (*domain.UserResponse, error) {
	if actor.ID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	user, err := u.findUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateSelf edits the caller's own profile. Email, role and password are
// not reachable through ProfilePatch.
func (u *userUsecase) UpdateSelf(ctx context.Context, actor domain.Identity, patch domain.ProfilePatch) (*domain.UserResponse, error) {
	if actor.ID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	user, err := u.findUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	patch.Apply(user)
	if user.Skills == nil {
		user.Skills = []string{}
	}
	user.UpdatedAt = u.now().UTC()

	if err := u.userRepo.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// ListUsers is public and returns only the public projection.
func (u *userUsecase) ListUsers(ctx context.Context, filter domain.UserFilter) ([]domain.UserResponse, error) {
	if filter.Role != "" && !filter.Role.Valid() {
		return nil, apperror.BadRequest("Invalid role filter")
	}

	users, err := u.userRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	out := make([]domain.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

func (u *userUsecase) findUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal(err)
	}
	return user, nil
}

func toUserResponse(user *domain.User) domain.UserResponse {
	skills := user.Skills
	if skills == nil {
		skills = []string{}
	}
	return domain.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		Company:   user.Company,
		Title:     user.Title,
		Skills:    skills,
		About:     user.About,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
