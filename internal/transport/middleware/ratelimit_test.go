package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock lets tests move time without sleeping.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newLimiter(t *testing.T) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(time.Hour)
	rl.now = clock.Now
	t.Cleanup(rl.Stop)
	return rl, clock
}

func hit(h http.Handler, addr string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/lessons", nil)
	req.RemoteAddr = addr
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_BurstThenReject(t *testing.T) {
	t.Parallel()
	rl, _ := newLimiter(t)
	h := rl.Limit(5)(okHandler())

	for i := range 5 {
		assert.Equal(t, http.StatusOK, hit(h, "1.2.3.4:1234").Code, "request %d", i)
	}

	rec := hit(h, "1.2.3.4:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	// 5/min refills one token every 12s.
	assert.Equal(t, "12", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiter_RefillsOverTime(t *testing.T) {
	t.Parallel()
	rl, clock := newLimiter(t)
	h := rl.Limit(60)(okHandler())

	for range 60 {
		hit(h, "3.3.3.3:1")
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "3.3.3.3:1").Code)

	clock.Advance(time.Second)
	assert.Equal(t, http.StatusOK, hit(h, "3.3.3.3:1").Code)
}

func TestRateLimiter_RejectionDoesNotConsume(t *testing.T) {
	t.Parallel()
	rl, clock := newLimiter(t)
	h := rl.Limit(60)(okHandler())

	hit(h, "4.4.4.4:1")
	for range 60 {
		hit(h, "4.4.4.4:1")
	}
	clock.Advance(time.Second)
	assert.Equal(t, http.StatusOK, hit(h, "4.4.4.4:1").Code)
}

func TestRateLimiter_KeysByHost(t *testing.T) {
	t.Parallel()
	rl, _ := newLimiter(t)
	h := rl.Limit(1)(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "5.5.5.5:1000").Code)
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "5.5.5.5:2000").Code, "same host, other port")
	assert.Equal(t, http.StatusOK, hit(h, "6.6.6.6:1000").Code, "other host")
}

func TestRateLimiter_SweepEvictsIdle(t *testing.T) {
	t.Parallel()
	rl, clock := newLimiter(t)
	h := rl.Limit(10)(okHandler())

	hit(h, "7.7.7.7:1")
	clock.Advance(idleTTL / 2)
	hit(h, "8.8.8.8:1")
	assert.Equal(t, 2, rl.size())

	clock.Advance(idleTTL/2 + time.Second)
	rl.sweep()
	assert.Equal(t, 1, rl.size())
}

func TestRateLimiter_StopTwice(t *testing.T) {
	t.Parallel()
	rl := NewRateLimiter(time.Minute)
	rl.Stop()
	assert.NotPanics(t, rl.Stop)
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		addr string
		want string
	}{
		{addr: "10.0.0.1:443", want: "10.0.0.1"},
		{addr: "[::1]:8080", want: "::1"},
		{addr: "no-port", want: "no-port"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = tt.addr
		assert.Equal(t, tt.want, clientIP(req), tt.addr)
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(300*time.Millisecond))
	assert.Equal(t, 13, retryAfterSeconds(12*time.Second+time.Millisecond))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}
