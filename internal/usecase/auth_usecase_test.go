package usecase_test

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/repository/memory"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testFrontendURL = "http://localhost:5173/"

func newTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func registerInput(email string) domain.RegisterInput {
	return domain.RegisterInput{
		Name:     "Ada Employer",
		Email:    email,
		Password: "secret123",
		Role:     domain.RoleEmployer,
		Company:  "Acme",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	tokens := newTokens()
	uc := usecase.NewAuthUsecase(memory.NewStore().Users(), tokens, nil, nil, testFrontendURL)

	t.Run("Should normalize email and issue a token for the new user", func(t *testing.T) {
		resp, err := uc.Register(ctx, registerInput("  Ada@Example.COM "))
		require.NoError(t, err)

		assert.Equal(t, "ada@example.com", resp.User.Email)
		assert.Equal(t, domain.RoleEmployer, resp.User.Role)

		identity, err := tokens.Verify(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, resp.User.ID, identity.ID)
		assert.Equal(t, domain.RoleEmployer, identity.Role)
	})

	t.Run("Should reject an email that differs only in case", func(t *testing.T) {
		_, err := uc.Register(ctx, registerInput("ADA@example.com"))
		assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
	})

	t.Run("Should reject unknown roles", func(t *testing.T) {
		input := registerInput("root@example.com")
		input.Role = "admin"
		_, err := uc.Register(ctx, input)
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	meta := domain.ClientMeta{IP: "10.0.0.1", UserAgent: "test", RequestID: "req-1"}

	setup := func(t *testing.T) (domain.AuthUsecase, *MockLoginGuard) {
		t.Helper()
		guard := new(MockLoginGuard)
		uc := usecase.NewAuthUsecase(memory.NewStore().Users(), newTokens(), nil, guard, testFrontendURL)
		_, err := uc.Register(ctx, registerInput("ada@example.com"))
		require.NoError(t, err)
		return uc, guard
	}

	t.Run("Should clear attempts on success", func(t *testing.T) {
		uc, guard := setup(t)
		guard.On("IsBlocked", mock.Anything, "ada@example.com", meta.IP).Return(false, nil)
		guard.On("ClearAttempts", mock.Anything, "ada@example.com", meta.IP).Return(nil)

		resp, err := uc.Login(ctx, domain.LoginInput{Email: "ADA@example.com", Password: "secret123"}, meta)
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		guard.AssertExpectations(t)
	})

	t.Run("Should record a failure for a wrong password", func(t *testing.T) {
		uc, guard := setup(t)
		guard.On("IsBlocked", mock.Anything, "ada@example.com", meta.IP).Return(false, nil)
		guard.On("RecordFailedAttempt", mock.Anything, "ada@example.com", meta).Return(false, nil)

		_, err := uc.Login(ctx, domain.LoginInput{Email: "ada@example.com", Password: "wrong-pass"}, meta)
		assert.Equal(t, apperror.KindUnauthenticated, apperror.KindOf(err))
		guard.AssertExpectations(t)
	})

	t.Run("Should not distinguish unknown emails", func(t *testing.T) {
		uc, guard := setup(t)
		guard.On("IsBlocked", mock.Anything, "nobody@example.com", meta.IP).Return(false, nil)
		guard.On("RecordFailedAttempt", mock.Anything, "nobody@example.com", meta).Return(false, nil)

		_, err := uc.Login(ctx, domain.LoginInput{Email: "nobody@example.com", Password: "secret123"}, meta)
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("Should refuse blocked emails before checking the password", func(t *testing.T) {
		uc, guard := setup(t)
		guard.On("IsBlocked", mock.Anything, "ada@example.com", meta.IP).Return(true, nil)

		_, err := uc.Login(ctx, domain.LoginInput{Email: "ada@example.com", Password: "secret123"}, meta)
		assert.Equal(t, apperror.KindTooManyRequests, apperror.KindOf(err))
		guard.AssertNotCalled(t, "ClearAttempts", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should work without a guard", func(t *testing.T) {
		uc := usecase.NewAuthUsecase(memory.NewStore().Users(), newTokens(), nil, nil, testFrontendURL)
		_, err := uc.Register(ctx, registerInput("ada@example.com"))
		require.NoError(t, err)

		_, err = uc.Login(ctx, domain.LoginInput{Email: "ada@example.com", Password: "secret123"}, meta)
		assert.NoError(t, err)
	})
}

func TestPasswordReset(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	mailer := new(MockMailer)
	uc := usecase.NewAuthUsecase(store.Users(), newTokens(), mailer, nil, testFrontendURL)

	_, err := uc.Register(ctx, registerInput("ada@example.com"))
	require.NoError(t, err)

	t.Run("Should stay silent for unknown emails", func(t *testing.T) {
		require.NoError(t, uc.ForgotPassword(ctx, "nobody@example.com"))
		mailer.AssertNotCalled(t, "SendPasswordReset", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject short passwords", func(t *testing.T) {
		err := uc.ResetPassword(ctx, "whatever", "123")
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})

	t.Run("Should reject unknown tokens", func(t *testing.T) {
		err := uc.ResetPassword(ctx, "not-a-token", "newpassword")
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})

	t.Run("Should email a single-use link that resets the password", func(t *testing.T) {
		var link string
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendPasswordReset", "ada@example.com", "Ada Employer", mock.Anything).
			Run(func(args mock.Arguments) { link = args.String(2) }).
			Return(nil).Once()

		require.NoError(t, uc.ForgotPassword(ctx, "Ada@Example.com"))
		require.True(t, strings.HasPrefix(link, "http://localhost:5173/reset-password?token="))

		parsed, err := url.Parse(link)
		require.NoError(t, err)
		token := parsed.Query().Get("token")
		require.NotEmpty(t, token)

		require.NoError(t, uc.ResetPassword(ctx, token, "brand-new-pass"))

		_, err = uc.Login(ctx, domain.LoginInput{Email: "ada@example.com", Password: "brand-new-pass"}, domain.ClientMeta{})
		assert.NoError(t, err)
		_, err = uc.Login(ctx, domain.LoginInput{Email: "ada@example.com", Password: "secret123"}, domain.ClientMeta{})
		assert.Error(t, err)

		err = uc.ResetPassword(ctx, token, "another-pass")
		assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	})
}
