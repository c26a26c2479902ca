// Package directory implements the integrity layer for the Quest API.
//
// One directory per entity type owns that entity's lifecycle and writes
// into other entities' denormalized fields whenever an association
// changes. The store offers no cross-path atomicity and no server-side
// validation, so relational guarantees are emulated here: every operation
// reads current state, validates preconditions against that snapshot, and
// then issues its writes in a fixed order.
//
// # Directory Pattern
//
// All directories follow a consistent pattern:
//
//   - Constructor function (NewXxxDirectory) accepts a config struct with
//     repository dependencies
//   - Create writes a blank entity; attributes are set by later operations
//     so association wiring always starts from a known-empty base
//   - Association operations check preconditions, then apply a
//     store.Sequence of named single-path writes in a fixed order
//   - Deletes are refused while any association remains
//
// # Consistency Model
//
// Precondition checks are not transactionally tied to the writes that
// follow them, and partially-applied sequences are not rolled back.
// Interleaved operations can both validate against the same stale
// snapshot; callers must serialize mutations externally (the HTTP layer
// uses a single-writer gate).
//
// # Error Handling
//
// Directories return domain-specific sentinel errors defined as
// package-level variables, grouped by kind:
//
//	var (
//	    ErrTeamNotFound   = errors.New("team not found")
//	    ErrTeamHasMembers = errors.New("team still has members")
//	)
//
// # Example Usage
//
//	dir := NewTeamDirectory(TeamDirectoryConfig{
//	    Teams:    teamRepository,
//	    Sessions: sessionRepository,
//	    Users:    userRepository,
//	})
//	if err := dir.AddMember(ctx, teamID, userID); err != nil {
//	    // errors.Is(err, ErrNotMember) etc.
//	}
package directory
