// Package fixtures provides test data factories for the Quest API.
//
// The fixtures package contains factory functions for creating test data
// with sensible defaults and optional customization. All factories run
// through the directory layer, so fixtures carry the same denormalized
// pointers as entities created by the live API.
//
// # Factory Pattern
//
// Create a factory over a store:
//
//	f := fixtures.New(tdb.Store)
//
// # Creating Test Data
//
// Factory methods create domain entities:
//
//	user := f.CreateUser(t)                      // Default user
//	session := f.CreateSession(t, user)          // Session created by user
//	f.JoinSession(t, user, session)              // Join user to session
//	team := f.CreateTeamInSession(t, session)    // Team attached to session
//
// # Customization
//
// Use option functions for customization:
//
//	session := f.CreateSession(t, user, WithSessionWindow(start, end))
//	artifact := f.CreateArtifact(t, WithArtifactLocation(47.6, -122.3))
//
// # Random Data
//
// Unique identifiers are generated automatically:
//
//	user1 := f.CreateUser(t) // user-abc123
//	user2 := f.CreateUser(t) // user-def456
//
// # Cleanup
//
// Test data is cleaned up when the test database is closed.
package fixtures
