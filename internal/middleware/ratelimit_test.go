package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// ============================================================================
// RateLimiter Tests
// ============================================================================

func TestRateLimiter_AllowsWithinCapacity(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(RateLimitConfig{Limit: 2, Burst: 1})
	defer rl.Stop()

	// Capacity is limit + burst.
	for i := 0; i < 3; i++ {
		allowed, _, _ := rl.Allow("client-a")
		if !allowed {
			t.Fatalf("expected request %d to be allowed", i+1)
		}
	}

	allowed, remaining, _ := rl.Allow("client-a")
	if allowed {
		t.Error("expected the request over capacity to be denied")
	}
	if remaining != 0 {
		t.Errorf("expected 0 remaining, got %d", remaining)
	}
}

func TestRateLimiter_WindowResets(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(RateLimitConfig{Limit: 1, Burst: 1, Window: 50 * time.Millisecond})
	defer rl.Stop()

	rl.Allow("client-a")
	rl.Allow("client-a")
	if allowed, _, _ := rl.Allow("client-a"); allowed {
		t.Fatal("expected the client to be exhausted")
	}

	time.Sleep(60 * time.Millisecond)

	if allowed, _, _ := rl.Allow("client-a"); !allowed {
		t.Error("expected a fresh window after the reset")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(RateLimitConfig{Limit: 1, Burst: 1})
	defer rl.Stop()

	rl.Allow("client-a")
	rl.Allow("client-a")
	if allowed, _, _ := rl.Allow("client-a"); allowed {
		t.Fatal("expected client-a to be exhausted")
	}

	if allowed, _, _ := rl.Allow("client-b"); !allowed {
		t.Error("expected client-b to be unaffected")
	}
}

// ============================================================================
// RateLimit Middleware Tests
// ============================================================================

func TestRateLimit_SetsHeaders(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(RateLimitConfig{Limit: 5, Burst: 1})
	defer rl.Stop()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := RateLimit(rl)(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	limited.ServeHTTP(rr, req)

	if rr.Header().Get("X-RateLimit-Limit") != "5" {
		t.Errorf("expected X-RateLimit-Limit 5, got %q", rr.Header().Get("X-RateLimit-Limit"))
	}
	if rr.Header().Get("X-RateLimit-Remaining") == "" {
		t.Error("expected X-RateLimit-Remaining header")
	}
	if rr.Header().Get("X-RateLimit-Reset") == "" {
		t.Error("expected X-RateLimit-Reset header")
	}
}

func TestRateLimit_DeniedReturns429(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(RateLimitConfig{Limit: 1, Burst: 1})
	defer rl.Stop()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	limited := RateLimit(rl)(handler)

	var rr *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		rr = httptest.NewRecorder()
		limited.ServeHTTP(rr, req)
	}

	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on a denied request")
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %q", ct)
	}
}
