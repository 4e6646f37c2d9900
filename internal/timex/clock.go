package timex

import "time"

// Clock supplies the current time. Services take a Clock so expiry checks
// can be pinned in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns time.Now in UTC.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// FixedClock always returns the same instant until moved with Advance.
type FixedClock struct {
	T time.Time
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time { return c.T }

// Advance moves the pinned instant forward by d.
func (c *FixedClock) Advance(d time.Duration) { c.T = c.T.Add(d) }
