package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-jobboard-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestConflictWrapsCause(t *testing.T) {
	cause := errors.New("already applied")
	err := apperror.Conflict("You have already applied for this job", cause)

	assert.Equal(t, http.StatusBadRequest, err.Code)
	assert.Equal(t, apperror.KindConflict, err.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(apperror.NotFound("Job not found")))
	assert.Equal(t, apperror.KindForbidden, apperror.KindOf(fmt.Errorf("wrapped: %w", apperror.Forbidden("Forbidden"))))
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(errors.New("boom")))
}
