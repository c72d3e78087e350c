// Package clock abstracts the wall clock so date-dependent calculations can
// be pinned down in tests.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time { return time.Now() }

// Fixed is a Clock stuck at a single instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
