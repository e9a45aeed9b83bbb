package domain

import "context"

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     Role
	Company  string
	Title    string
}

type LoginInput struct {
	Email    string
	Password string
}

// ClientMeta describes the request a login attempt came from.
type ClientMeta struct {
	IP        string
	UserAgent string
	RequestID string
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	Issue(user *User) (string, error)
	Verify(token string) (Identity, error)
}

// PasswordResetMailer delivers password-reset links.
type PasswordResetMailer interface {
	IsConfigured() bool
	SendPasswordReset(to, name, link string) error
}

// LoginGuard throttles repeated failed logins for an email.
type LoginGuard interface {
	IsBlocked(ctx context.Context, email, ip string) (bool, error)
	RecordFailedAttempt(ctx context.Context, email string, meta ClientMeta) (bool, error)
	ClearAttempts(ctx context.Context, email, ip string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResponse, error)
	Login(ctx context.Context, input LoginInput, meta ClientMeta) (*AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}
