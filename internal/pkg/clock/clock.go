// Package clock abstracts wall-clock time so level visit stamps and progress
// records can be pinned in tests
package clock

import "time"

//go:generate mockgen -destination=mock/mock_clock.go -package=clockmock github.com/KirkDiggler/rpg-dungeon/internal/pkg/clock Clock

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real implements Clock using the system time in UTC
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now().UTC()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Ticking is a deterministic Clock that advances by Step on every call.
// The CLI uses it under --seed so visit stamps are reproducible.
type Ticking struct {
	current time.Time
	step    time.Duration
}

// NewTicking creates a clock starting at start and advancing by step
func NewTicking(start time.Time, step time.Duration) *Ticking {
	return &Ticking{current: start, step: step}
}

// Now returns the current tick and advances the clock
func (t *Ticking) Now() time.Time {
	now := t.current
	t.current = t.current.Add(t.step)
	return now
}
