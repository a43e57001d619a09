package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := RateLimit(ctx, 0.001, 2)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/session", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	for i := 0; i < 2; i++ {
		if rec := do("10.0.0.1:1234"); rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
	}

	rec := do("10.0.0.1:5678")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "1000" {
		t.Errorf("Retry-After = %q, want %q", rec.Header().Get("Retry-After"), "1000")
	}

	// Limits are tracked per IP.
	if rec := do("10.0.0.2:1234"); rec.Code != http.StatusOK {
		t.Errorf("other IP status = %d, want 200", rec.Code)
	}
}

func TestIPRateLimiterEvict(t *testing.T) {
	rl := newIPRateLimiter(1, 1)
	rl.getLimiter("10.0.0.1")
	rl.getLimiter("10.0.0.2")

	rl.evict(time.Now().Add(-time.Hour))
	if len(rl.visitors) != 2 {
		t.Fatalf("evicted recent visitors: %d left", len(rl.visitors))
	}

	rl.evict(time.Now().Add(time.Second))
	if len(rl.visitors) != 0 {
		t.Errorf("expected all visitors evicted, %d left", len(rl.visitors))
	}
}
