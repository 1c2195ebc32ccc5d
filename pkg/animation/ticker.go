package animation

import (
	"cmp"
	"slices"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// Driver advances registered animations once per frame and provides the
// one-shot timers used for delayed starts.
//
// Animations are handed a Driver explicitly through [Animation.Start]; there
// is no process-wide default.
type Driver interface {
	// Register adds the animation to the set advanced every frame.
	Register(a *Animation)
	// Unregister removes the animation. Unregistering an unknown animation
	// does nothing.
	Unregister(a *Animation)
	// AfterFunc calls f once, on the driver's goroutine, after d has elapsed.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending one-shot callback created by [Driver.AfterFunc].
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer; stopping twice is harmless.
	Stop() bool
}

// FrameDriver is a [Driver] that is stepped explicitly, typically from a
// display refresh callback.
//
// A FrameDriver performs no locking. Register, Step, Tick and all methods of
// the animations it drives must be called from the same goroutine.
type FrameDriver struct {
	clock      Clock
	animations map[uint64]*Animation
	timers     []*frameTimer
	lastTick   time.Time
}

// NewFrameDriver creates a driver using clock for timers and Tick. A nil
// clock uses [SystemClock].
func NewFrameDriver(clock Clock) *FrameDriver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &FrameDriver{
		clock:      clock,
		animations: make(map[uint64]*Animation),
	}
}

// Register implements [Driver].
func (d *FrameDriver) Register(a *Animation) {
	if a == nil {
		errors.Reportf("animation.FrameDriver.Register", errors.KindDriver, 0, "nil animation")
		return
	}
	d.animations[a.ID()] = a
}

// Unregister implements [Driver].
func (d *FrameDriver) Unregister(a *Animation) {
	if a == nil {
		return
	}
	delete(d.animations, a.ID())
}

// AfterFunc implements [Driver]. Timers fire at the start of the first Step
// at which the clock has reached their deadline.
func (d *FrameDriver) AfterFunc(delay time.Duration, f func()) Timer {
	t := &frameTimer{driver: d, deadline: d.clock.Now().Add(delay), f: f}
	d.timers = append(d.timers, t)
	return t
}

// Len returns the number of registered animations.
func (d *FrameDriver) Len() int {
	return len(d.animations)
}

// HasActive reports whether any animation is registered or any delayed
// start is pending.
func (d *FrameDriver) HasActive() bool {
	return len(d.animations) > 0 || len(d.timers) > 0
}

// Step fires due timers and then advances every registered animation by dt,
// higher RelativePriority first. Animations that ended are dropped.
func (d *FrameDriver) Step(dt time.Duration) {
	d.fireTimers()
	if len(d.animations) == 0 {
		return
	}

	// Copy so that callbacks may register or unregister animations.
	animations := make([]*Animation, 0, len(d.animations))
	for _, a := range d.animations {
		animations = append(animations, a)
	}
	slices.SortFunc(animations, func(a, b *Animation) int {
		if a.RelativePriority != b.RelativePriority {
			return cmp.Compare(b.RelativePriority, a.RelativePriority)
		}
		return cmp.Compare(a.ID(), b.ID())
	})

	for _, a := range animations {
		if _, ok := d.animations[a.ID()]; !ok {
			continue
		}
		if a.State() == StateEnded {
			delete(d.animations, a.ID())
			continue
		}
		a.Advance(dt)
	}
}

// Tick steps the driver by the time elapsed on its clock since the previous
// Tick. The first Tick only fires timers.
func (d *FrameDriver) Tick() {
	now := d.clock.Now()
	var dt time.Duration
	if !d.lastTick.IsZero() {
		dt = now.Sub(d.lastTick)
	}
	d.lastTick = now
	d.Step(dt)
}

func (d *FrameDriver) fireTimers() {
	if len(d.timers) == 0 {
		return
	}
	now := d.clock.Now()
	var due []*frameTimer
	d.timers = slices.DeleteFunc(d.timers, func(t *frameTimer) bool {
		if !t.deadline.After(now) {
			due = append(due, t)
			return true
		}
		return false
	})
	slices.SortStableFunc(due, func(a, b *frameTimer) int {
		return a.deadline.Compare(b.deadline)
	})
	for _, t := range due {
		if t.done {
			continue
		}
		t.done = true
		func() {
			defer errors.Recover("animation.FrameDriver.timer")
			t.f()
		}()
	}
}

type frameTimer struct {
	driver   *FrameDriver
	deadline time.Time
	f        func()
	done     bool
}

func (t *frameTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.driver.timers = slices.DeleteFunc(t.driver.timers, func(o *frameTimer) bool { return o == t })
	return true
}
