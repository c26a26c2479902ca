package store

import (
	"context"
	"fmt"
)

// Step is one named write inside a Sequence.
type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

// Sequence is an ordered plan of independent single-path writes.
//
// Execute applies steps in the order they were added and stops at the
// first failure. Completed steps are not undone: the store offers no
// cross-path atomicity, so a mid-sequence failure leaves state partially
// applied and the caller sees which step failed. Callers needing
// consistency under concurrency must serialize access externally.
type Sequence struct {
	steps []Step
}

// NewSequence creates an empty write plan.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Add appends a named step and returns the sequence for chaining.
func (s *Sequence) Add(name string, run func(ctx context.Context) error) *Sequence {
	s.steps = append(s.steps, Step{Name: name, Run: run})
	return s
}

// Len returns the number of planned steps.
func (s *Sequence) Len() int {
	return len(s.steps)
}

// Execute runs the steps in order. On failure the returned error names
// the failed step and wraps its cause; earlier writes remain applied.
func (s *Sequence) Execute(ctx context.Context) error {
	for _, step := range s.steps {
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.Name, err)
		}
	}
	return nil
}
