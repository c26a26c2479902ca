// Package helpers provides test utility functions for the Quest API.
//
// The helpers package contains common test utilities for building HTTP
// requests, asserting on responses, and inspecting the store.
//
// # Request Building
//
// Construct requests fluently:
//
//	req := helpers.NewRequest(t, "POST", "/v1/users").
//		WithBody(map[string]string{"id": "u1"}).
//		Build()
//
// # Assertion Helpers
//
// Common test assertions:
//
//	helpers.AssertStatus(t, resp, http.StatusCreated)
//	helpers.AssertProblemDetails(t, resp, 404, model.ErrCodeNotFound)
//	helpers.AssertValidationError(t, resp, "creator")
//	helpers.AssertPathExists(t, store, "users/u1/memberships/s1")
//
// # Pointer Helpers
//
// Create pointers to literal values for PATCH request bodies:
//
//	name := helpers.StringPtr("test")
//	count := helpers.IntPtr(42)
//	flag := helpers.BoolPtr(true)
package helpers
