package validation

import (
	"errors"
	"testing"

	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type registerForm struct {
	Name     string   `json:"name" validate:"required,notblank,valid_name,no_emoji"`
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Role     string   `json:"role" validate:"required,oneof=jobseeker employer"`
	Skills   []string `form:"skills" validate:"max=2"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	err := newValidator().Struct(registerForm{
		Name:     "   ",
		Email:    "not-an-email",
		Password: "123",
		Role:     "admin",
		Skills:   []string{"a", "b", "c"},
	})

	details := FieldErrors(err)
	assert.ElementsMatch(t, []apperror.FieldError{
		{Field: "name", Message: "is required"},
		{Field: "email", Message: "must be a valid email address"},
		{Field: "password", Message: "must be at least 6 characters"},
		{Field: "role", Message: "must be one of: jobseeker, employer"},
		{Field: "skills", Message: "must have at most 2 items"},
	}, details)
}

func TestValidName(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Var("Anne-Marie O'Neil", "valid_name"))
	assert.NoError(t, v.Var("", "valid_name"))
	assert.Error(t, v.Var("R2D2", "valid_name"))
}

func TestNoEmoji(t *testing.T) {
	v := newValidator()
	assert.NoError(t, v.Var("Backend engineer, Go & SQL", "no_emoji"))
	assert.Error(t, v.Var("Go developer 🚀", "no_emoji"))
}

func TestFieldErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, FieldErrors(errors.New("unexpected EOF")))
}
