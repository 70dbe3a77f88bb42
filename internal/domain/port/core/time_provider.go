package core

import (
	"time"

	"cloud.google.com/go/civil"
)

// Duration is a domain-specific wrapper around time.Duration
type Duration time.Duration

// Common duration constants
const (
	Millisecond Duration = Duration(time.Millisecond)
	Second               = Duration(time.Second)
)

// Std converts domain Duration to time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// TimeProvider abstracts the process clock for the domain
type TimeProvider interface {
	// Now returns the current instant
	Now() time.Time
	// Since returns the time elapsed since t
	Since(t time.Time) Duration
	// Today returns the current calendar date in the process time zone
	Today() civil.Date
}
