package security

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "***@example.com", MaskEmail("j@example.com"))
	assert.Equal(t, "***", MaskEmail("ab"))
}

func TestLogLoginFailedMasksEmail(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := WithZap(zap.New(core), "jobboard", "test")

	sl.LogLoginFailed(context.Background(), "jane@example.com", "10.0.0.1", "curl", "req-1", "invalid_credentials")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, string(EventLoginFailed), entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, "j***@example.com", fields["subject_value"])
	assert.Equal(t, "req-1", fields["request_id"])
}

func TestBlockCreatedLogsAtErrorLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sl := WithZap(zap.New(core), "jobboard", "test")

	sl.LogBlockCreated(context.Background(), "jane@example.com", "10.0.0.1", "", 15*time.Minute)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestLoginTrackerFailsOpenWithoutRedis(t *testing.T) {
	tracker := NewLoginTracker(nil, DefaultLoginTrackerConfig(), nil)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		blocked, err := tracker.RecordFailedAttempt(ctx, "jane@example.com", domain.ClientMeta{IP: "10.0.0.1"})
		require.NoError(t, err)
		assert.False(t, blocked)
	}

	blocked, err := tracker.IsBlocked(ctx, "jane@example.com", "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, blocked)
	assert.NoError(t, tracker.ClearAttempts(ctx, "jane@example.com", "10.0.0.1"))
}
