package testing

import "github.com/go-drift/motion/pkg/animation"

// Recorder captures the callbacks of an animation in delivery order.
type Recorder struct {
	Values []animation.Vector
	Events []animation.Event
}

// Record installs a Recorder as the ValueChanged and Completion callbacks of
// a, replacing any existing ones.
func Record(a *animation.Animation) *Recorder {
	r := &Recorder{}
	a.ValueChanged = func(v animation.Vector) {
		r.Values = append(r.Values, v)
	}
	a.Completion = func(e animation.Event) {
		r.Events = append(r.Events, e)
	}
	return r
}

// Last returns the most recently reported value, or nil.
func (r *Recorder) Last() animation.Vector {
	if len(r.Values) == 0 {
		return nil
	}
	return r.Values[len(r.Values)-1]
}

// FinishedCount returns the number of EventFinished events.
func (r *Recorder) FinishedCount() int {
	return r.count(animation.EventFinished)
}

// RetargetedCount returns the number of EventRetargeted events.
func (r *Recorder) RetargetedCount() int {
	return r.count(animation.EventRetargeted)
}

func (r *Recorder) count(kind animation.EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.Values = nil
	r.Events = nil
}
