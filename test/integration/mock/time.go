package mock

import "time"

// Time is a clock that can be moved to an arbitrary instant.
type Time struct {
	current time.Time
	setAt   time.Time
}

// NewTime returns a clock that follows the wall clock until it is set.
func NewTime() *Time {
	now := time.Now()
	return &Time{current: now, setAt: now}
}

// SetCurrentTime moves the clock to the given instant.
func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.current = currentTime
	t.setAt = time.Now()
}

// Now returns the mocked instant plus the wall time elapsed since it was set.
func (t *Time) Now() time.Time {
	return t.current.Add(time.Since(t.setAt))
}
