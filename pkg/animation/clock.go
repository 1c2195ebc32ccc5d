package animation

import "time"

// Clock provides time for a [FrameDriver]. Tests can inject a fake clock to
// control deferred starts deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock uses system time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
