package ratelimit_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dukaan-labs/billing-api/internal/ratelimit"
)

func TestMemoryLimiterBlocksAfterMax(t *testing.T) {
	t.Parallel()

	handler := ratelimit.Handler{
		Limiter: ratelimit.NewMemoryLimiter(),
		Config: ratelimit.Config{
			Key:    ratelimit.ClientIPKey,
			Window: time.Minute,
			Max:    2,
		},
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	wrapped := handler.Middleware(next)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		wrapped.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}
	require.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, statuses)
}

func TestMissingKeyFuncPassesThrough(t *testing.T) {
	t.Parallel()

	handler := ratelimit.Handler{Limiter: ratelimit.NewMemoryLimiter()}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	rec := httptest.NewRecorder()
	handler.Middleware(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRateFromFormatted(t *testing.T) {
	t.Parallel()

	window, max, err := ratelimit.RateFromFormatted("120-M")
	require.NoError(t, err)
	require.Equal(t, time.Minute, window)
	require.Equal(t, 120, max)

	_, _, err = ratelimit.RateFromFormatted("bogus")
	require.Error(t, err)
}
