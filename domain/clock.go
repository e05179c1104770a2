package domain

import "time"

// Clock supplies the current time for expiry checks. Readings are expected to
// be monotone, precision is whatever the host provides.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock reads the wall clock
var SystemClock Clock = systemClock{}
