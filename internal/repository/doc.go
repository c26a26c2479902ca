// Package repository implements the data access layer for the Quest API.
//
// Each repository translates entity and field access into a single path in
// the hierarchical key-value store. Repositories never read before writing
// and never combine paths: one method, one store call. All precondition
// checking and multi-path ordering lives a layer up, in the directories.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a store.Store
//   - Getters return (nil, nil) when the record is absent
//   - Create stamps createdOn/updatedOn and writes the whole record
//   - Field setters write exactly one leaf (SetName, SetTeam, ...)
//   - Association writes address one set entry or index entry
//     (AddMember, SetParticipant, RecordFound, ...)
//
// # Path Layout
//
// Entities live under four collection roots, with every field individually
// addressable:
//
//	users/{id}/sessionsJoined/{sessionId}/teamId
//	sessions/{id}/participants/{userId}
//	teams/{id}/members/{userId}
//	artifacts/{id}/hint
//
// # Example Usage
//
//	repo := NewTeamRepository(st)
//	team, err := repo.Get(ctx, teamID)
//	if err != nil {
//	    return err
//	}
//	if team == nil {
//	    // Handle not found
//	}
package repository
