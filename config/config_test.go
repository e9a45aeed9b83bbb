package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_TTL", "7d")
	assert.Equal(t, 7*24*time.Hour, getEnvDuration("TEST_TTL", time.Hour))

	t.Setenv("TEST_TTL", "90m")
	assert.Equal(t, 90*time.Minute, getEnvDuration("TEST_TTL", time.Hour))

	t.Setenv("TEST_TTL", "soon")
	assert.Equal(t, time.Hour, getEnvDuration("TEST_TTL", time.Hour))
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, splitList(" http://a.test, ,http://b.test "))
	assert.Nil(t, splitList(""))
}

func TestLoadConfigFallsBackOnUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	t.Setenv("CORS_ORIGIN", "http://localhost:5173")

	cfg, err := LoadConfig()
	assert.NoError(t, err)
	assert.Equal(t, StorePostgres, cfg.StoreDriver)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
}
