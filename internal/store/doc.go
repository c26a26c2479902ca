// Package store provides the path-addressed key-value store behind Quest.
//
// The whole data set lives in one tree-shaped namespace addressed by
// slash-delimited paths (users/{id}, sessions/{id}/participants/{userId},
// ...). Every field of every entity is an individually addressable node,
// and the four Store operations work on subtrees:
//   - Exists: is anything stored at or under this path
//   - Read: decode the subtree at this path into a Go value
//   - Write: replace the subtree at this path (intermediate nodes are
//     created, structs are stored as field trees)
//   - Delete: remove the subtree (absent paths are a no-op)
//
// # No cross-path atomicity
//
// The store deliberately offers no multi-path transactions, no
// compare-and-swap and no server-side validation. Callers express
// multi-path updates as a Sequence: an ordered plan of named single-path
// writes that stops at the first failure without undoing earlier steps.
// Consistency across paths is the caller's job (see internal/directory).
//
// # Backends
//
// Two implementations are provided:
//   - Memory: a mutex-guarded in-memory tree, the development and test
//     backend.
//   - SurrealDB: one kv record per leaf value, prefix queries for
//     subtree reads, used when STORE_BACKEND=surrealdb.
//
// Both treat empty collections as absent: removing the last child of a
// branch removes the branch, so a fully unwound entity leaves no trace.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: nothing stored at the path
//   - ErrConnection: backend connection issues
//   - ErrQuery: read/write execution failures
//   - ErrInvalidPath: empty or slash-containing path segment
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, store.ErrNotFound) {
//	    // Handle missing subtree
//	}
package store
