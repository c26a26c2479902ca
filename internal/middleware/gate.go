package middleware

import (
	"net/http"
	"sync"
)

// Gate serializes every mutating operation against the store. The store
// offers no multi-key transactions, so a precondition checked at the start
// of an operation only holds through its writes if no other writer runs in
// between. All writers, HTTP handlers and background jobs alike, must go
// through the same gate.
type Gate struct {
	mu sync.Mutex
}

// NewGate creates a gate
func NewGate() *Gate {
	return &Gate{}
}

// Do runs fn while holding the gate. Background jobs use this directly.
func (g *Gate) Do(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn()
}

// Serialize returns a middleware that funnels mutating requests through
// the gate. Reads pass straight through: a single-path read is atomic at
// the store, and a read racing a write sequence may observe an
// intermediate state either way.
func Serialize(g *Gate) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
				g.Do(func() {
					next.ServeHTTP(w, r)
				})
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
