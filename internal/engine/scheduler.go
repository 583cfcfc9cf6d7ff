package engine

import "time"

// DefaultInterval is the target tick cadence.
const DefaultInterval = 250 * time.Millisecond

// Clock returns the current time. Tests substitute a fake.
type Clock func() time.Time

// Scheduler computes input poll timeouts that hold the loop to a steady
// cadence. It gates only the wait before the next poll, never rendering.
type Scheduler struct {
	Interval time.Duration
	last     time.Time
}

// NewScheduler returns a scheduler whose first tick started at now.
func NewScheduler(interval time.Duration, now time.Time) *Scheduler {
	return &Scheduler{Interval: interval, last: now}
}

// LastTick returns when the current tick window started.
func (s *Scheduler) LastTick() time.Time {
	return s.last
}

// Timeout returns how long the next poll may wait: the time left in the
// current window, clamped to [0, Interval].
func (s *Scheduler) Timeout(now time.Time) time.Duration {
	elapsed := now.Sub(s.last)
	switch {
	case elapsed < 0:
		return s.Interval
	case elapsed >= s.Interval:
		return 0
	default:
		return s.Interval - elapsed
	}
}

// Advance starts a new window at now if the current one has run its full
// interval. It reports whether it did.
func (s *Scheduler) Advance(now time.Time) bool {
	if now.Sub(s.last) < s.Interval {
		return false
	}
	s.last = now
	return true
}
