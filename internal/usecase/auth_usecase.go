package usecase

import (
	"context"
	"errors"
	"fmt"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"
	"net/url"
	"strings"
	"time"
)

const resetTokenTTL = time.Hour

type authUsecase struct {
	userRepo    domain.UserRepository
	tokens      domain.TokenManager
	mailer      domain.PasswordResetMailer
	guard       domain.LoginGuard
	frontendURL string
	now         func() time.Time
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	tokens domain.TokenManager,
	mailer domain.PasswordResetMailer,
	guard domain.LoginGuard,
	frontendURL string,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:    userRepo,
		tokens:      tokens,
		mailer:      mailer,
		guard:       guard,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		now:         time.Now,
	}
}

// NormalizeEmail lower-cases and trims an address before storage or lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *authUsecase) Register(ctx context.Context, input domain.RegisterInput) (*domain.AuthResponse, error) {
	if !input.Role.Valid() {
		return nil, apperror.BadRequest("Invalid role")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	now := u.now().UTC()
	user := &domain.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        NormalizeEmail(input.Email),
		PasswordHash: hash,
		Role:         input.Role,
		Company:      strings.TrimSpace(input.Company),
		Title:        strings.TrimSpace(input.Title),
		Skills:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Email uniqueness is a store constraint.
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Email already registered", err)
		}
		return nil, apperror.Internal(err)
	}

	return u.authResponse(user)
}

func (u *authUsecase) Login(ctx context.Context, input domain.LoginInput, meta domain.ClientMeta) (*domain.AuthResponse, error) {
	email := NormalizeEmail(input.Email)

	if u.guard != nil {
		blocked, err := u.guard.IsBlocked(ctx, email, meta.IP)
		if err != nil {
			logger.Log.Warn("Login guard unavailable", "error", err)
		}
		if blocked {
			return nil, apperror.TooManyRequests("Too many failed login attempts. Please try again later.")
		}
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}
	valid := false
	if user != nil {
		valid = auth.CheckPassword(user.PasswordHash, input.Password)
	} else {
		auth.CheckMissingPassword(input.Password)
	}
	if !valid {
		u.recordFailure(ctx, email, meta)
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	if u.guard != nil {
		if err := u.guard.ClearAttempts(ctx, email, meta.IP); err != nil {
			logger.Log.Warn("Failed to clear login attempts", "error", err)
		}
	}

	return u.authResponse(user)
}

// ForgotPassword never reveals whether the address is registered.
func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return apperror.Internal(err)
	}

	token, tokenHash, err := auth.NewResetToken()
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.userRepo.SetResetToken(ctx, user.ID, tokenHash, u.now().UTC().Add(resetTokenTTL)); err != nil {
		return apperror.Internal(err)
	}

	if u.mailer == nil || !u.mailer.IsConfigured() {
		logger.Log.Warn("Password reset requested but email is not configured", "user_id", user.ID)
		return nil
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", u.frontendURL, url.QueryEscape(token))
	if err := u.mailer.SendPasswordReset(user.Email, user.Name, link); err != nil {
		logger.Log.Error("Failed to send password reset email", "user_id", user.ID, "error", err)
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, token, password string) error {
	if len(password) < auth.MinPasswordLength {
		return apperror.Validation("Validation failed", []apperror.FieldError{
			{Field: "password", Message: fmt.Sprintf("must be at least %d characters", auth.MinPasswordLength)},
		})
	}

	user, err := u.userRepo.GetByResetToken(ctx, auth.HashResetToken(token), u.now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.BadRequest("Invalid or expired reset token")
		}
		return apperror.Internal(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.userRepo.ResetPassword(ctx, user.ID, hash); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *authUsecase) recordFailure(ctx context.Context, email string, meta domain.ClientMeta) {
	if u.guard == nil {
		return
	}
	if _, err := u.guard.RecordFailedAttempt(ctx, email, meta); err != nil {
		logger.Log.Warn("Failed to record login attempt", "error", err)
	}
}

func (u *authUsecase) authResponse(user *domain.User) (*domain.AuthResponse, error) {
	token, err := u.tokens.Issue(user)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}
