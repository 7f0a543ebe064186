package booking

import "time"

// Clock abstracts wall time so lead-time and cutoff rules can be tested
// deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
