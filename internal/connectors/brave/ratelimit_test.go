package brave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBase = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// frozenLimiter returns a limiter whose clock is controlled by the
// returned pointer.
func frozenLimiter(perSecond, perMonth int) (*RateLimiter, *time.Time) {
	now := testBase
	r := NewRateLimiter(perSecond, perMonth)
	r.now = func() time.Time { return now }
	return r, &now
}

func TestNewRateLimiter(t *testing.T) {
	t.Run("non-positive caps fall back to defaults", func(t *testing.T) {
		r := NewRateLimiter(0, -1)
		status := r.Status()
		assert.Equal(t, DefaultRequestsPerSecond, status.SecondLimit)
		assert.Equal(t, DefaultRequestsPerMonth, status.MonthLimit)
	})

	t.Run("custom caps are kept", func(t *testing.T) {
		r := NewRateLimiter(20, 2000000)
		status := r.Status()
		assert.Equal(t, 20, status.SecondLimit)
		assert.Equal(t, 2000000, status.MonthLimit)
	})
}

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("first call is allowed", func(t *testing.T) {
		r, _ := frozenLimiter(1, 15000)
		assert.NoError(t, r.Allow())
	})

	t.Run("second call in the same window is rejected", func(t *testing.T) {
		r, _ := frozenLimiter(1, 15000)
		require.NoError(t, r.Allow())

		err := r.Allow()
		require.Error(t, err)
		assert.True(t, IsRateLimited(err))
	})

	t.Run("exactly one second is still the same window", func(t *testing.T) {
		r, now := frozenLimiter(1, 15000)
		require.NoError(t, r.Allow())

		*now = testBase.Add(time.Second)
		assert.Error(t, r.Allow())
	})

	t.Run("call after the window elapses is allowed", func(t *testing.T) {
		r, now := frozenLimiter(1, 15000)
		require.NoError(t, r.Allow())

		*now = testBase.Add(time.Second + time.Millisecond)
		assert.NoError(t, r.Allow())
	})

	t.Run("monthly cap persists across windows", func(t *testing.T) {
		r, now := frozenLimiter(1, 2)
		require.NoError(t, r.Allow())

		*now = testBase.Add(2 * time.Second)
		require.NoError(t, r.Allow())

		// Fresh window, but the process-lifetime counter is spent.
		*now = testBase.Add(4 * time.Second)
		err := r.Allow()
		require.Error(t, err)

		var rateLimitErr *RateLimitError
		require.ErrorAs(t, err, &rateLimitErr)
		assert.Equal(t, 2, rateLimitErr.MonthUsed)
	})

	t.Run("rejected calls do not consume quota", func(t *testing.T) {
		r, now := frozenLimiter(1, 15000)
		require.NoError(t, r.Allow())
		require.Error(t, r.Allow())

		status := r.Status()
		assert.Equal(t, 1, status.SecondUsed)
		assert.Equal(t, 1, status.MonthUsed)

		*now = testBase.Add(2 * time.Second)
		assert.NoError(t, r.Allow())
		assert.Equal(t, 2, r.Status().MonthUsed)
	})
}

func TestRateLimiter_Status(t *testing.T) {
	r, _ := frozenLimiter(1, 15000)
	require.NoError(t, r.Allow())

	status := r.Status()
	assert.Equal(t, 1, status.SecondUsed)
	assert.Equal(t, 1, status.SecondLimit)
	assert.Equal(t, 1, status.MonthUsed)
	assert.Equal(t, 15000, status.MonthLimit)
	assert.Equal(t, testBase, status.LastReset)
}
