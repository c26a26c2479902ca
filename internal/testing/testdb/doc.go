// Package testdb provides test store utilities for the Quest API.
//
// The testdb package hands each test an isolated store with automatic
// setup and cleanup.
//
// # Test Store Setup
//
// Create a test store for each test:
//
//	func TestSomething(t *testing.T) {
//	    tdb := testdb.New(t)
//	    defer tdb.Close()
//
//	    // Use tdb.Store for store operations
//	}
//
// # Backends
//
// By default tests run on the in-memory store. Set TEST_DB_HOST to run the
// same tests against a real SurrealDB instance:
//
//	TEST_DB_HOST=localhost go test ./...
//
// # Isolation
//
// On the SurrealDB backend each test gets its own namespace:
//
//	func TestA(t *testing.T) {
//	    tdb := testdb.New(t) // namespace: test_..._1
//	}
//
//	func TestB(t *testing.T) {
//	    tdb := testdb.New(t) // namespace: test_..._2
//	}
//
// Namespaces are removed on Close.
//
// # Timeout Context
//
// Test stores include timeout contexts:
//
//	ctx := tdb.Ctx() // 10 second timeout
package testdb
