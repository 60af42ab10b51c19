package clock

import "time"

// Clock abstracts the wall clock so session expiry and game timestamps
// can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// New returns a Clock backed by the system time.
func New() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
