package domain

import (
	"context"
	"time"
)

type User struct {
	ID                   string
	Name                 string
	Email                string
	PasswordHash         string
	Role                 Role
	Company              string
	Title                string
	Skills               []string
	About                string
	ResetPasswordToken   string // SHA-256 of the emailed token
	ResetPasswordExpires *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// ProfilePatch is a partial update over the self-editable profile fields.
type ProfilePatch struct {
	Name    *string
	Company *string
	Title   *string
	Skills  *[]string
	About   *string
}

// Apply copies the set fields of p onto user.
func (p ProfilePatch) Apply(user *User) {
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Company != nil {
		user.Company = *p.Company
	}
	if p.Title != nil {
		user.Title = *p.Title
	}
	if p.Skills != nil {
		user.Skills = *p.Skills
	}
	if p.About != nil {
		user.About = *p.About
	}
}

type UserFilter struct {
	Role Role // empty matches every role
}

// UserResponse is the public projection of a User. It has no credential or
// reset-token fields.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Company   string    `json:"company,omitempty"`
	Title     string    `json:"title,omitempty"`
	Skills    []string  `json:"skills"`
	About     string    `json:"about,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type UserRepository interface {
	// Create returns ErrDuplicate when the email is already registered.
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByResetToken(ctx context.Context, tokenHash string, now time.Time) (*User, error)
	List(ctx context.Context, filter UserFilter) ([]User, error)
	UpdateProfile(ctx context.Context, user *User) error
	SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error
	// ResetPassword stores the new hash and clears the reset-token fields.
	ResetPassword(ctx context.Context, id, passwordHash string) error
}

type UserUsecase interface {
	GetSelf(ctx context.Context, actor Identity) (*UserResponse, error)
	UpdateSelf(ctx context.Context, actor Identity, patch ProfilePatch) (*UserResponse, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]UserResponse, error)
}
