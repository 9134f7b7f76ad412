//go:build unit

package job_test

import (
	"testing"
	"time"

	"firm-digest/internal/domain/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_Delay(t *testing.T) {
	p := job.RetryPolicy{MaxAttempts: 5, Backoff: 10 * time.Minute, MaxBackoff: time.Hour}

	assert.Equal(t, 10*time.Minute, p.Delay(1))
	assert.Equal(t, 20*time.Minute, p.Delay(2))
	assert.Equal(t, 40*time.Minute, p.Delay(3))
	assert.Equal(t, time.Hour, p.Delay(4), "capped")
	assert.Equal(t, time.Hour, p.Delay(50), "capped without overflow")
}

func TestRetryPolicy_NextAttemptAt(t *testing.T) {
	p := job.RetryPolicy{MaxAttempts: 3, Backoff: 10 * time.Minute, MaxBackoff: 6 * time.Hour}
	failedAt := time.Date(2025, 1, 15, 13, 5, 0, 0, time.UTC)

	t.Run("success: schedules a retry while attempts remain", func(t *testing.T) {
		next := p.NextAttemptAt(1, failedAt)
		require.NotNil(t, next)
		assert.Equal(t, failedAt.Add(10*time.Minute), *next)

		next = p.NextAttemptAt(2, failedAt)
		require.NotNil(t, next)
		assert.Equal(t, failedAt.Add(20*time.Minute), *next)
	})

	t.Run("success: nil once the ceiling is reached", func(t *testing.T) {
		assert.Nil(t, p.NextAttemptAt(3, failedAt))
		assert.Nil(t, p.NextAttemptAt(4, failedAt))
	})
}
