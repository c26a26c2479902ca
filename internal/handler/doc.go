// Package handler provides HTTP request handlers for the Quest API.
//
// The handler package contains all HTTP endpoint implementations organized by
// entity. Each handler struct wraps the directory it serves and translates
// between HTTP requests and directory operations.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts the directory dependency
//   - Methods handle specific HTTP endpoints
//   - Response helpers from response.go standardize output format
//   - Directory errors are mapped to RFC 9457 Problem Details responses
//
// Handlers perform no cross-entity logic of their own. Precondition checks and
// the ordering of denormalized writes live in the directory layer; handlers
// only decode requests, dispatch, and encode the result.
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteData: Single resource wrapped in a data envelope
//   - WriteNoContent: 204 response for association operations
//   - WriteJSON: Raw JSON response
//   - WriteError: RFC 9457 Problem Details error response
//
// # Example Usage
//
//	handler := NewUserHandler(userDirectory)
//	mux.HandleFunc("POST /v1/users", handler.Create)
//	mux.HandleFunc("GET /v1/users/{userId}", handler.Get)
package handler
