package brave

import (
	"sync"
	"time"

	"github.com/custodia-labs/brave-mcp/internal/core/domain"
)

const (
	// DefaultRequestsPerSecond matches the Brave free plan.
	DefaultRequestsPerSecond = 1

	// DefaultRequestsPerMonth matches the Brave free plan quota.
	DefaultRequestsPerMonth = 15000
)

// RateLimiter is a fixed-window advisory limiter for Brave API calls.
// The per-second counter resets once more than a second has elapsed
// since the last reset; the per-month counter only resets with the
// process. It never inspects remote rate limit headers.
type RateLimiter struct {
	mu        sync.Mutex
	perSecond int
	perMonth  int
	second    int
	month     int
	lastReset time.Time

	now func() time.Time // injectable for tests
}

// NewRateLimiter creates a limiter with the given caps. Non-positive
// caps fall back to the free plan defaults.
func NewRateLimiter(perSecond, perMonth int) *RateLimiter {
	if perSecond <= 0 {
		perSecond = DefaultRequestsPerSecond
	}
	if perMonth <= 0 {
		perMonth = DefaultRequestsPerMonth
	}
	return &RateLimiter{
		perSecond: perSecond,
		perMonth:  perMonth,
		now:       time.Now,
	}
}

// Allow checks both counters and claims a slot. It returns a
// *RateLimitError without blocking when either cap is reached.
func (r *RateLimiter) Allow() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if now.Sub(r.lastReset) > time.Second {
		r.second = 0
		r.lastReset = now
	}

	if r.second >= r.perSecond || r.month >= r.perMonth {
		return &RateLimitError{SecondUsed: r.second, MonthUsed: r.month}
	}

	r.second++
	r.month++
	return nil
}

// Status returns a snapshot of the limiter counters.
func (r *RateLimiter) Status() domain.RateLimitStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	return domain.RateLimitStatus{
		SecondUsed:  r.second,
		SecondLimit: r.perSecond,
		MonthUsed:   r.month,
		MonthLimit:  r.perMonth,
		LastReset:   r.lastReset,
	}
}
