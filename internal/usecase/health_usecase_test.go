package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-jobboard-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("dial tcp: refused") }

	assert.Equal(t, map[string]string{"status": "ok"}, usecase.NewHealthUsecase(nil).Check(context.Background()))

	result := usecase.NewHealthUsecase(map[string]usecase.Pinger{
		"database": ok,
		"redis":    down,
	}).Check(context.Background())

	assert.Equal(t, "degraded", result["status"])
	assert.Equal(t, "ok", result["database"])
	assert.Equal(t, "unavailable", result["redis"])
}
