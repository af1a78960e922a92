package ratelimit

import (
	"context"
	"time"

	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// MemoryLimiter implements Limiter on top of ulule/limiter's in-memory
// store. Counters live in process memory, matching the session store's
// single-process lifecycle.
type MemoryLimiter struct {
	store limiter.Store
}

// NewMemoryLimiter constructs an in-memory limiter.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{store: memory.NewStore()}
}

// Allow consumes one token for key inside the window.
func (m *MemoryLimiter) Allow(ctx context.Context, key string, window time.Duration, max int) (bool, int, time.Time, error) {
	rate := limiter.Rate{Period: window, Limit: int64(max)}
	lctx, err := limiter.New(m.store, rate).Get(ctx, key)
	if err != nil {
		return false, 0, time.Time{}, err
	}
	return !lctx.Reached, int(lctx.Remaining), time.Unix(lctx.Reset, 0), nil
}

// RateFromFormatted parses the "<count>-<period>" limit notation, e.g.
// "120-M" for 120 requests per minute.
func RateFromFormatted(value string) (window time.Duration, max int, err error) {
	rate, err := limiter.NewRateFromFormatted(value)
	if err != nil {
		return 0, 0, err
	}
	return rate.Period, int(rate.Limit), nil
}
