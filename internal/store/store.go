package store

import (
	"context"
	"errors"
)

// Standard errors for store operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates no value exists at the requested path.
	ErrNotFound = errors.New("path not found")

	// ErrConnection indicates a failure to connect to or communicate with the store.
	ErrConnection = errors.New("store connection error")

	// ErrQuery indicates a read or write against the backend failed.
	ErrQuery = errors.New("store query error")

	// ErrInvalidPath indicates a path with an empty or malformed segment.
	ErrInvalidPath = errors.New("invalid path")
)

// Store is a path-addressed key-value store over a tree-shaped namespace.
//
// Paths address every node individually: a Write to a parent replaces the
// whole subtree, a Write to a leaf replaces just that value. The store
// offers no cross-path atomicity and no server-side validation; callers
// sequence their own writes and enforce their own invariants.
type Store interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Exists reports whether any value is stored at or under path.
	Exists(ctx context.Context, path Path) (bool, error)

	// Read decodes the subtree rooted at path into dest.
	// Returns ErrNotFound when nothing is stored there.
	Read(ctx context.Context, path Path, dest any) error

	// Write stores value at path, replacing any existing subtree and
	// creating intermediate nodes as needed. Values are normalized
	// through JSON, so structs land as field trees.
	Write(ctx context.Context, path Path, value any) error

	// Delete removes the subtree rooted at path. Deleting an absent
	// path is not an error.
	Delete(ctx context.Context, path Path) error
}

// Config holds store backend configuration
type Config struct {
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string

	// Prefix roots every path under an extra namespace segment chain,
	// for backends shared between deployments. Optional.
	Prefix string
}
