package testing

import (
	"errors"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

// DefaultFrameDuration is the frame interval used by Pump and PumpAndSettle.
const DefaultFrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// Harness drives animations with a fake clock and a [animation.FrameDriver].
type Harness struct {
	clock  *FakeClock
	driver *animation.FrameDriver
	frame  time.Duration
}

// NewHarness creates a harness with a fresh FakeClock.
func NewHarness() *Harness {
	clk := NewFakeClock()
	return &Harness{
		clock:  clk,
		driver: animation.NewFrameDriver(clk),
		frame:  DefaultFrameDuration,
	}
}

// Clock returns the harness clock.
func (h *Harness) Clock() *FakeClock { return h.clock }

// Driver returns the harness driver.
func (h *Harness) Driver() *animation.FrameDriver { return h.driver }

// SetFrameDuration changes the interval used by Pump.
func (h *Harness) SetFrameDuration(d time.Duration) {
	if d > 0 {
		h.frame = d
	}
}

// Pump advances the clock by one frame and steps the driver.
func (h *Harness) Pump() {
	h.PumpFrame(h.frame)
}

// PumpFrame advances the clock by dt and steps the driver by dt.
func (h *Harness) PumpFrame(dt time.Duration) {
	h.clock.Advance(dt)
	h.driver.Step(dt)
}

// PumpFrames calls PumpFrame n times.
func (h *Harness) PumpFrames(n int, dt time.Duration) {
	for range n {
		h.PumpFrame(dt)
	}
}

// PumpAndSettle pumps frames until no animation is registered and no delayed
// start is pending, or until timeout of simulated time has elapsed.
func (h *Harness) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		h.Pump()
		elapsed += h.frame
		if !h.driver.HasActive() {
			return nil
		}
	}
	return ErrSettleTimeout
}
