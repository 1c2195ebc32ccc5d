package animation

import "time"

// Tween is a typed view of an [Animation] whose values are converted through
// a [Property].
//
// See ExampleTween for usage.
type Tween[T any] struct {
	*Animation
	Property Property[T]
}

// NewTween creates an inactive animation of a typed value.
func NewTween[T any](p Property[T], timing TimingFunction, duration time.Duration, value, target T) *Tween[T] {
	return &Tween[T]{
		Animation: New(timing, duration, p.Vector(value), p.Vector(target)),
		Property:  p,
	}
}

// Value returns the current value.
func (tw *Tween[T]) Value() T {
	return tw.Property.Value(tw.Animation.Value())
}

// Target returns the target value.
func (tw *Tween[T]) Target() T {
	return tw.Property.Value(tw.Animation.Target())
}

// SetValue sets the current value.
func (tw *Tween[T]) SetValue(v T) {
	tw.Animation.SetValue(tw.Property.Vector(v))
}

// SetTarget retargets the animation.
func (tw *Tween[T]) SetTarget(v T) {
	tw.Animation.Retarget(tw.Property.Vector(v))
}

// Evaluate returns the value at elapsed fraction t of the current pass,
// shaped by the animation's timing function.
func (tw *Tween[T]) Evaluate(t float64) T {
	a := tw.Animation
	progress := a.Timing.SolveForDuration(clampUnit(t), a.Duration)
	return tw.Property.Value(a.from.Lerp(a.target, progress))
}

// OnChange sets the animation's ValueChanged callback to fn.
func (tw *Tween[T]) OnChange(fn func(T)) {
	if fn == nil {
		tw.Animation.ValueChanged = nil
		return
	}
	tw.Animation.ValueChanged = func(v Vector) {
		fn(tw.Property.Value(v))
	}
}

// OnFinish sets the animation's Completion callback to call fn with the
// final value when the animation finishes. Retarget events are ignored.
func (tw *Tween[T]) OnFinish(fn func(T)) {
	if fn == nil {
		tw.Animation.Completion = nil
		return
	}
	tw.Animation.Completion = func(e Event) {
		if e.Kind == EventFinished {
			fn(tw.Property.Value(e.Value))
		}
	}
}
