package clock

import "time"

// Clock supplies the current time. The alert generator and the service
// layer take a Clock instead of calling time.Now so tests can drive
// ticks deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// New returns a Clock backed by the system wall clock.
func New() Clock { return systemClock{} }
