package booking

import "time"

// Clock supplies the current instant. Time-dependent operations read it
// once and use that single snapshot for all comparisons.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
