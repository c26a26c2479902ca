// Package jobs implements background job processing for the Quest API.
//
// The jobs package contains scheduled tasks that run independently of HTTP
// request handling.
//
// # Job Types
//
// Available background jobs:
//
//   - SessionSweeper: deactivates sessions whose end time has passed
//
// # Lifecycle
//
// Jobs share a common lifecycle:
//
//	sweeper := jobs.NewSessionSweeper(sessions, gate, time.Minute)
//	sweeper.Start()
//	defer sweeper.Stop()
//
// Start launches the job's loop on its own goroutine; Stop signals it and
// waits for the in-flight run to finish.
//
// # Write Serialization
//
// Jobs that write to the store take the same write gate the HTTP layer
// uses, so a background sweep never runs concurrently with a mutating
// request.
//
// # Error Handling
//
// Jobs log errors but don't crash the application. A failed sweep is simply
// retried on the next tick.
package jobs
