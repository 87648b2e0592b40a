package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

func limiterRouter(t *testing.T, cfg RateLimiterConfig) (*RateLimiter, http.Handler) {
	t.Helper()

	rl := NewRateLimiter(cfg)
	t.Cleanup(rl.Stop)

	r := ginext.New("test")
	r.Use(rl.Middleware())
	r.GET("/ping", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return rl, r
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	_, r := limiterRouter(t, RateLimiterConfig{
		Rate:            2,
		Burst:           5,
		CleanupInterval: time.Minute,
	})

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
}

func TestRateLimiter_Returns429OverBurst(t *testing.T) {
	_, r := limiterRouter(t, RateLimiterConfig{
		Rate:            1,
		Burst:           2,
		CleanupInterval: time.Minute,
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestRateLimiter_ClientsAreIndependent(t *testing.T) {
	_, r := limiterRouter(t, RateLimiterConfig{
		Rate:            1,
		Burst:           1,
		CleanupInterval: time.Minute,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	rl, r := limiterRouter(t, RateLimiterConfig{
		Rate:            1,
		Burst:           1,
		CleanupInterval: time.Minute,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)

	assert.Equal(t, 1, rl.LimiterCount())

	rl.mu.Lock()
	for _, cl := range rl.limiters {
		cl.lastAccess = time.Now().Add(-3 * time.Minute)
	}
	rl.mu.Unlock()

	rl.cleanup()

	assert.Equal(t, 0, rl.LimiterCount())
}
