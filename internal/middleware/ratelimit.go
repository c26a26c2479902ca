package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/forgo/quest/api/internal/model"
)

// RateLimiter applies a fixed-window request limit per client
type RateLimiter struct {
	mu       sync.Mutex
	windows  map[string]*clientWindow
	limit    int           // Requests per window
	window   time.Duration // Window length
	burst    int           // Extra headroom on top of limit
	cleanup  time.Duration // Sweep interval for idle clients
	stopChan chan struct{}
}

type clientWindow struct {
	used    int
	startAt time.Time
}

// RateLimitConfig holds rate limiter configuration
type RateLimitConfig struct {
	Limit   int           // Requests per window (default 100)
	Window  time.Duration // Window length (default 1 minute)
	Burst   int           // Extra headroom (default 20)
	Cleanup time.Duration // Sweep interval (default 5 minutes)
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.Limit == 0 {
		cfg.Limit = 100
	}
	if cfg.Window == 0 {
		cfg.Window = time.Minute
	}
	if cfg.Burst == 0 {
		cfg.Burst = 20
	}
	if cfg.Cleanup == 0 {
		cfg.Cleanup = 5 * time.Minute
	}

	rl := &RateLimiter{
		windows:  make(map[string]*clientWindow),
		limit:    cfg.Limit,
		window:   cfg.Window,
		burst:    cfg.Burst,
		cleanup:  cfg.Cleanup,
		stopChan: make(chan struct{}),
	}

	go rl.sweepLoop()

	return rl
}

// Stop stops the rate limiter sweep goroutine
func (rl *RateLimiter) Stop() {
	close(rl.stopChan)
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(rl.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweepIdle()
		case <-rl.stopChan:
			return
		}
	}
}

func (rl *RateLimiter) sweepIdle() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-2 * rl.window)
	for key, cw := range rl.windows {
		if cw.startAt.Before(cutoff) {
			delete(rl.windows, key)
		}
	}
}

// Allow spends one request for the given key. It reports whether the
// request may proceed, how many requests remain in the current window,
// and when the window resets.
func (rl *RateLimiter) Allow(key string) (allowed bool, remaining int, resetTime time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	capacity := rl.limit + rl.burst

	cw, exists := rl.windows[key]
	if !exists || now.Sub(cw.startAt) >= rl.window {
		cw = &clientWindow{startAt: now}
		rl.windows[key] = cw
	}

	reset := cw.startAt.Add(rl.window)
	if cw.used >= capacity {
		return false, 0, reset
	}
	cw.used++
	return true, capacity - cw.used, reset
}

// RateLimit returns a middleware that applies rate limiting per client
// address.
func RateLimit(limiter *RateLimiter) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, remaining, resetTime := limiter.Allow(clientKey(r))

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

			if !allowed {
				retryAfter := int(time.Until(resetTime).Seconds())
				if retryAfter < 1 {
					retryAfter = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

				model.NewRateLimitError(retryAfter).WriteJSON(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies the caller by host, ignoring the ephemeral port
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
