package middleware

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func TestRateLimit_BurstThenRejects(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{Requests: 3, Window: time.Minute})
	h := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	send := func(ip string) error {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		return h(e.NewContext(req, rec))
	}

	for i := 0; i < 3; i++ {
		if err := send("10.0.0.1"); err != nil {
			t.Fatalf("request %d within limit rejected: %v", i+1, err)
		}
	}

	err := send("10.0.0.1")
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %v", err)
	}

	// A different client has its own bucket.
	if err := send("10.0.0.2"); err != nil {
		t.Fatalf("other client throttled by shared bucket: %v", err)
	}
}

// Constructing limiters must not spawn goroutines that outlive the middleware;
// pruning happens inline on the request path.
func TestRateLimit_NoBackgroundGoroutine(t *testing.T) {
	e := echo.New()
	before := runtime.NumGoroutine()

	for i := 0; i < 25; i++ {
		mw := RateLimit(RateLimitConfig{Requests: 1, Window: time.Minute})
		h := mw(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		rec := httptest.NewRecorder()
		if err := h(e.NewContext(req, rec)); err != nil {
			t.Fatalf("request failed: %v", err)
		}
	}

	time.Sleep(10 * time.Millisecond)
	after := runtime.NumGoroutine()
	if after > before+2 {
		t.Fatalf("limiters leaked goroutines: %d before, %d after", before, after)
	}
}

func TestRateLimit_StaleClientsPruned(t *testing.T) {
	e := echo.New()
	mw := RateLimit(RateLimitConfig{Requests: 2, Window: 10 * time.Millisecond})
	h := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	send := func(ip string) error {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.Header.Set("X-Real-IP", ip)
		rec := httptest.NewRecorder()
		return h(e.NewContext(req, rec))
	}

	if err := send("10.0.0.1"); err != nil {
		t.Fatalf("first request rejected: %v", err)
	}

	// Long past 3x the window: the next request sweeps the stale entry and the
	// client starts over with a fresh bucket.
	time.Sleep(50 * time.Millisecond)
	for i := 0; i < 2; i++ {
		if err := send("10.0.0.1"); err != nil {
			t.Fatalf("request %d after prune rejected: %v", i+1, err)
		}
	}
}
