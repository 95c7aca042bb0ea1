// Package clock provides the wall clock the ledger reads timestamps from.
package clock

import bclock "github.com/benbjohnson/clock"

// Clock is the time source injected into mining and the submission guard.
type Clock = bclock.Clock

// Mock is a manually advanced Clock.
type Mock = bclock.Mock

// New returns the real wall clock.
func New() Clock {
	return bclock.New()
}

// NewMock returns a Clock that only moves when told to. It starts at the unix epoch.
func NewMock() *Mock {
	return bclock.NewMock()
}

// UnixMilli returns the current time of c in milliseconds since the unix epoch.
func UnixMilli(c Clock) int64 {
	return c.Now().UnixMilli()
}

// UnixSeconds returns the current time of c in whole seconds since the unix epoch.
func UnixSeconds(c Clock) int64 {
	return c.Now().Unix()
}
