// Package model defines domain entities and data structures for the Quest API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - User: Player with per-session membership records and found artifacts
//   - Session: Game instance with teams, a participant index, and offered artifacts
//   - Team: Player group attached to at most one session
//   - Artifact: Collectible definition, referenced by sessions but owned by none
//
// # JSON Serialization
//
// Field tags double as store path segments, so every tag matches the
// slash-delimited tree layout exactly:
//
//	type Team struct {
//	    ID        string          `json:"id"`
//	    SessionID string          `json:"sessionId,omitempty"`
//	    Members   map[string]bool `json:"members,omitempty"`
//	}
//
// Id sets serialize as {id: true} maps, and empty collections are absent
// from the store rather than stored as empty objects.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
