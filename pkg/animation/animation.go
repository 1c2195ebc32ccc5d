package animation

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/go-drift/motion/pkg/errors"
)

// State represents the lifecycle state of an [Animation].
//
//	         Advance(dt > 0)            terminal bound, Stop
//	Inactive ───────────────► Running ──────────────────────► Ended
//	    ▲                        │
//	    └────────────────────────┘
//	       value reaches target
//
// No transition leaves Ended; construct a new Animation to animate again.
type State int

const (
	// StateInactive means the animation is not animating.
	StateInactive State = iota
	// StateRunning means the animation is animating, or paused mid-flight.
	StateRunning
	// StateEnded means the animation finished or was stopped.
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// EventKind identifies a completion [Event].
type EventKind int

const (
	// EventFinished is delivered once when the animation ends.
	EventFinished EventKind = iota
	// EventRetargeted is delivered when the target changes mid-flight.
	EventRetargeted
)

func (k EventKind) String() string {
	switch k {
	case EventFinished:
		return "finished"
	case EventRetargeted:
		return "retargeted"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is passed to an animation's Completion callback.
type Event struct {
	Kind EventKind
	// Value is the value the animation finished at (EventFinished).
	Value Vector
	// From and To are the previous and new targets (EventRetargeted).
	From Vector
	To   Vector
}

func (e Event) String() string {
	if e.Kind == EventRetargeted {
		return fmt.Sprintf("retargeted(from: %v, to: %v)", e.From, e.To)
	}
	return fmt.Sprintf("finished(at: %v)", e.Value)
}

// Finished returns an EventFinished event at v.
func Finished(v Vector) Event {
	return Event{Kind: EventFinished, Value: v}
}

// Retargeted returns an EventRetargeted event.
func Retargeted(from, to Vector) Event {
	return Event{Kind: EventRetargeted, From: from, To: to}
}

// tickDamping divides every delta time passed to Advance. It halves the
// observable animation speed and is kept because changing it changes how long
// every animation takes.
const tickDamping = 2.0

type autoreversePhase int

const (
	autoreverseNone autoreversePhase = iota
	autoreverseForward
	autoreverseBackward
)

var lastID atomic.Uint64

// Animation animates a [Vector] from its current value towards a target using
// a [TimingFunction] over a fixed duration.
//
// An Animation is driven by a [Driver], which calls Advance once per frame.
// It performs no locking: the driver and all callers must use it from a
// single goroutine.
type Animation struct {
	// Timing shapes the progress of the animation.
	Timing TimingFunction

	// Duration is the length of one pass. Zero jumps to the target on the
	// first tick.
	Duration time.Duration

	// ValueChanged is called with the current value after every tick.
	ValueChanged func(v Vector)

	// Completion is called when the animation finishes or is retargeted.
	Completion func(e Event)

	// RelativePriority orders animations within a frame; higher first.
	RelativePriority int

	// IntegralizeValues rounds the value reported when the animation
	// finishes to the pixel grid given by PixelScale.
	IntegralizeValues bool

	// PixelScale is the number of device pixels per unit. Zero marks values
	// that are not pixel-backed, for which integralization is a no-op.
	PixelScale float64

	// ScrubsLinearly makes an animation that is not being ticked ignore
	// Timing while it is scrubbed with SetFractionComplete.
	ScrubsLinearly bool

	// AutoStarts restarts an animation that is not running when its target
	// is changed to something other than its current value. The driver is
	// the one last passed to Start or SetDriver.
	AutoStarts bool

	id       uint64
	state    State
	running  bool
	value    Vector
	from     Vector
	target   Vector
	velocity Vector
	fraction float64

	reversed     bool
	repeats      bool
	autoreverses bool
	phase        autoreversePhase

	driver     Driver
	lastDriver Driver
	deferred   Timer
}

// New creates an inactive animation from value to target.
func New(timing TimingFunction, duration time.Duration, value, target Vector) *Animation {
	return &Animation{
		Timing:     timing,
		Duration:   duration,
		PixelScale: 1,
		id:         lastID.Add(1),
		value:      value.Clone(),
		from:       value.Clone(),
		target:     target.Clone(),
		velocity:   make(Vector, len(value)),
	}
}

// ID returns the unique identifier of the animation.
func (a *Animation) ID() uint64 { return a.id }

// State returns the lifecycle state.
func (a *Animation) State() State { return a.state }

// Value returns a copy of the current value.
func (a *Animation) Value() Vector { return a.value.Clone() }

// Target returns a copy of the target value.
func (a *Animation) Target() Vector { return a.target.Clone() }

// From returns a copy of the value the current pass started from.
func (a *Animation) From() Vector { return a.from.Clone() }

// Velocity returns the change of the value per second over the last tick.
func (a *Animation) Velocity() Vector { return a.velocity.Clone() }

// FractionComplete returns the elapsed fraction of the current pass.
func (a *Animation) FractionComplete() float64 { return a.fraction }

// IsReversed reports whether the animation runs from target back to from.
func (a *Animation) IsReversed() bool { return a.reversed }

// Repeats reports whether the animation repeats indefinitely.
func (a *Animation) Repeats() bool { return a.repeats }

// Autoreverses reports whether a repeating animation alternates direction.
func (a *Animation) Autoreverses() bool { return a.autoreverses }

// IsRunning reports whether the animation is registered with a driver.
func (a *Animation) IsRunning() bool { return a.running }

// IsPaused reports whether the animation was paused mid-flight.
func (a *Animation) IsPaused() bool { return a.state == StateRunning && !a.running }

// SetValue sets the current value. While the animation is not running the
// new value also becomes the start of the next pass.
func (a *Animation) SetValue(v Vector) {
	a.value = v.Clone()
	if a.state != StateRunning {
		a.from = v.Clone()
	}
}

// SetTarget is an alias for Retarget.
func (a *Animation) SetTarget(v Vector) { a.Retarget(v) }

// Retarget changes the target value.
//
// While running, the duration is corrected with [ComputeRetargetedDuration],
// the next pass starts at the current value heading forward towards the new
// target, and a single EventRetargeted is delivered. The animation keeps
// running and the value does not jump.
func (a *Animation) Retarget(v Vector) {
	if a.target.Equal(v) {
		return
	}
	old := a.target
	a.target = v.Clone()
	if a.state != StateRunning {
		if a.AutoStarts && !a.value.Equal(a.target) {
			a.autoStart()
		}
		return
	}

	if d, ok := ComputeRetargetedDuration(a.from, old, a.target, a.Duration, a.Timing); ok {
		a.Duration = d
	}
	a.from = a.value.Clone()
	a.fraction = 0
	a.reversed = false
	if a.phase != autoreverseNone {
		a.phase = autoreverseForward
	}
	a.emitCompletion(Retargeted(old, a.target.Clone()))
}

// SetReversed changes the direction of the animation. Flipping mirrors the
// elapsed fraction and leaves the value untouched until the next tick.
//
// The value is still rendered as from + (target - from) * Timing(fraction),
// so unless the fraction was exactly 0.5 the next tick lands on the mirrored
// point of the curve: a linear 0 to 100 animation flipped at 30 continues
// from 70 towards 0.
func (a *Animation) SetReversed(reversed bool) {
	if a.reversed == reversed {
		return
	}
	a.reversed = reversed
	a.fraction = 1 - a.fraction
	if a.phase != autoreverseNone {
		a.phase = phaseFor(reversed)
	}
}

// SetRepeats sets whether the animation repeats indefinitely.
func (a *Animation) SetRepeats(repeats bool) {
	if a.repeats == repeats {
		return
	}
	a.repeats = repeats
	a.updateAutoreverse()
}

// SetAutoreverses sets whether a repeating animation alternates direction
// instead of restarting. It has no effect unless Repeats is also set.
func (a *Animation) SetAutoreverses(autoreverses bool) {
	if a.autoreverses == autoreverses {
		return
	}
	a.autoreverses = autoreverses
	a.updateAutoreverse()
}

func (a *Animation) updateAutoreverse() {
	if a.repeats && a.autoreverses {
		if a.phase == autoreverseNone {
			a.phase = phaseFor(a.reversed)
		}
		return
	}
	a.phase = autoreverseNone
}

func phaseFor(reversed bool) autoreversePhase {
	if reversed {
		return autoreverseBackward
	}
	return autoreverseForward
}

// Start registers the animation with the driver, after delay if positive.
// Starting a running or ended animation does nothing. A pending delayed start
// is replaced.
func (a *Animation) Start(d Driver, delay time.Duration) {
	if a.running || a.state == StateEnded {
		return
	}
	if d == nil {
		errors.Reportf("animation.Start", errors.KindDriver, a.id, "nil driver")
		return
	}
	if delay < 0 {
		errors.Reportf("animation.Start", errors.KindDriver, a.id, "negative delay %v", delay)
		delay = 0
	}
	a.cancelDeferred()
	a.lastDriver = d

	start := func() {
		a.deferred = nil
		if a.running || a.state == StateEnded {
			return
		}
		a.running = true
		a.driver = d
		d.Register(a)
	}
	if delay == 0 {
		start()
		return
	}
	a.deferred = d.AfterFunc(delay, start)
}

// SetDriver sets the driver used by AutoStarts without starting the
// animation.
func (a *Animation) SetDriver(d Driver) {
	a.lastDriver = d
}

func (a *Animation) autoStart() {
	if a.running {
		return
	}
	if a.lastDriver == nil {
		errors.Reportf("animation.AutoStart", errors.KindDriver, a.id, "no driver to start on")
		return
	}
	a.Start(a.lastDriver, 0)
}

// CancelDeferredStart cancels a pending delayed start. It is safe to call
// at any time and leaves the animation otherwise untouched.
func (a *Animation) CancelDeferredStart() {
	a.cancelDeferred()
}

// Pause stops ticking the animation without ending it. A paused animation
// can be scrubbed with SetFractionComplete and resumed with Start.
func (a *Animation) Pause() {
	a.cancelDeferred()
	a.detach()
}

// SetFractionComplete scrubs the animation to the elapsed fraction f,
// clamped to [0, 1], and reports the resulting value. With ScrubsLinearly
// set, an animation that is not registered with a driver (paused, or never
// started) is scrubbed without Timing.
func (a *Animation) SetFractionComplete(f float64) {
	if a.state == StateEnded {
		return
	}
	a.fraction = clampUnit(f)
	progress := a.fraction
	if a.running || !a.ScrubsLinearly {
		progress = a.Timing.SolveForDuration(a.fraction, a.Duration)
	}
	a.value = a.from.Lerp(a.target, progress)
	a.emitValue(a.value)
}

// Stop stops the animation.
//
// With immediately set, the animation ends at its current value and delivers
// EventFinished; further calls do nothing. Otherwise the animation is
// retargeted to its current value and settles there on the next tick.
func (a *Animation) Stop(immediately bool) {
	if !immediately {
		a.Retarget(a.value)
		return
	}
	a.cancelDeferred()
	a.detach()
	if a.state == StateEnded {
		return
	}
	a.state = StateEnded
	a.emitCompletion(Finished(a.value.Clone()))
}

// StopAt ends the animation at v and reports v as both the current value
// and the finished value. An animation that already ended is left alone.
func (a *Animation) StopAt(v Vector) {
	a.cancelDeferred()
	a.detach()
	if a.state == StateEnded {
		return
	}
	a.value = v.Clone()
	a.target = v.Clone()
	a.from = v.Clone()
	a.state = StateEnded
	a.emitValue(a.terminalValue())
	a.emitCompletion(Finished(a.value.Clone()))
}

// Advance moves the animation forward by dt. It is called by the driver once
// per frame.
func (a *Animation) Advance(dt time.Duration) {
	if a.state == StateEnded {
		return
	}
	if a.value.Equal(a.target) && (a.state != StateRunning || a.from.Equal(a.target)) {
		a.state = StateInactive
		a.detach()
		return
	}
	if dt <= 0 {
		return
	}
	a.state = StateRunning

	prev := a.value
	animated := a.Duration > 0
	if animated {
		step := dt.Seconds() / tickDamping / a.Duration.Seconds()
		if a.reversed {
			a.fraction -= step
		} else {
			a.fraction += step
		}
		a.fraction = clampUnit(a.fraction)
		a.value = a.interpolate()
	} else {
		a.value = a.target.Clone()
	}

	finished := !animated || (a.reversed && a.fraction <= 0) || (!a.reversed && a.fraction >= 1)

	switch {
	case finished && a.repeats && animated:
		a.updateVelocity(prev, dt)
		a.emitValue(a.value)
		// The callback may have stopped the animation or turned repeating off.
		if a.state == StateEnded || !a.repeats {
			return
		}
		a.wrap()
	case finished:
		if a.reversed {
			a.value = a.from.Clone()
		} else {
			a.value = a.target.Clone()
		}
		a.updateVelocity(prev, dt)
		a.finish()
	default:
		a.updateVelocity(prev, dt)
		a.emitValue(a.value)
	}
}

// wrap starts the next pass of a repeating animation.
func (a *Animation) wrap() {
	switch a.phase {
	case autoreverseForward, autoreverseBackward:
		// The bound just reached is where the opposite direction starts.
		a.reversed = !a.reversed
		a.phase = phaseFor(a.reversed)
	default:
		a.fraction = startBound(a.reversed)
	}
	a.value = a.interpolate()
}

func (a *Animation) finish() {
	a.cancelDeferred()
	a.detach()
	a.state = StateEnded
	a.emitValue(a.terminalValue())
	a.emitCompletion(Finished(a.value.Clone()))
}

func (a *Animation) terminalValue() Vector {
	if a.IntegralizeValues {
		return a.value.Integral(a.PixelScale)
	}
	return a.value
}

func (a *Animation) interpolate() Vector {
	return a.from.Lerp(a.target, a.Timing.SolveForDuration(a.fraction, a.Duration))
}

func (a *Animation) updateVelocity(prev Vector, dt time.Duration) {
	a.velocity = a.value.Sub(prev).Scale(1 / dt.Seconds())
}

func (a *Animation) detach() {
	a.running = false
	if d := a.driver; d != nil {
		a.driver = nil
		d.Unregister(a)
	}
}

func (a *Animation) cancelDeferred() {
	if a.deferred != nil {
		a.deferred.Stop()
		a.deferred = nil
	}
}

func (a *Animation) emitValue(v Vector) {
	if a.ValueChanged == nil {
		return
	}
	defer errors.RecoverCallback("animation.ValueChanged", a.id)
	a.ValueChanged(v.Clone())
}

func (a *Animation) emitCompletion(e Event) {
	if a.Completion == nil {
		return
	}
	defer errors.RecoverCallback("animation.Completion", a.id)
	a.Completion(e)
}

func startBound(reversed bool) float64 {
	if reversed {
		return 1
	}
	return 0
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}

func (a *Animation) String() string {
	return fmt.Sprintf(`Animation(
    id: %d
    priority: %d
    state: %v
    isRunning: %t

    value: %v
    target: %v
    from: %v
    velocity: %v
    fractionComplete: %g

    timing: %v
    duration: %v
    isReversed: %t
    repeats: %t
    autoreverses: %t
    integralizeValues: %t
    scrubsLinearly: %t
    autoStarts: %t
)`, a.id, a.RelativePriority, a.state, a.running,
		a.value, a.target, a.from, a.velocity, a.fraction,
		a.Timing, a.Duration, a.reversed, a.repeats, a.autoreverses,
		a.IntegralizeValues, a.ScrubsLinearly, a.AutoStarts)
}
