// Package time contains clock helpers so date-dependent code can be pinned in tests
package time

import "time"

// Clock returns the current instant
type Clock func() time.Time

// UTC is the default clock, always in UTC
func UTC() time.Time { return time.Now().UTC() }

// Fixed returns a clock frozen at t
func Fixed(t time.Time) Clock { return func() time.Time { return t } }

// Or returns c, or the UTC clock when c is nil
func Or(c Clock) Clock {
	if c == nil {
		return UTC
	}
	return c
}

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
