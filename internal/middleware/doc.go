// Package middleware provides HTTP middleware for the Quest API.
//
// The middleware package contains reusable components for request
// processing plus the write gate that the storage model requires.
//
// # Available Middleware
//
//   - RequestID: unique request ID generation and propagation
//   - Logger: structured request logging via slog
//   - Recovery: panic recovery with a problem+json 500
//   - CORS: cross-origin request handling
//   - Compress: gzip response compression
//   - RateLimit: fixed-window request limiting per client
//   - Idempotency: replays cached responses for repeated POST/PATCH
//     requests carrying the same Idempotency-Key
//   - Serialize: funnels mutating requests through the write gate
//
// # The Write Gate
//
// The store has no multi-key transactions, so every operation that checks
// preconditions and then writes must run alone. Serialize holds the gate
// for POST, PUT, PATCH, and DELETE requests; background jobs take the same
// gate through Gate.Do:
//
//	gate := middleware.NewGate()
//	handler := middleware.Chain(mux, middleware.Serialize(gate))
//	gate.Do(func() { sweeper.RunOnce(ctx) })
//
// # Context Values
//
// Middleware sets context values accessible via helper functions:
//
//   - GetRequestID(ctx): Returns the unique request identifier
package middleware
