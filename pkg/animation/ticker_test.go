package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/motion/pkg/animation"
	motiontest "github.com/go-drift/motion/pkg/testing"
)

func TestFrameDriverPriorityOrder(t *testing.T) {
	d := animation.NewFrameDriver(motiontest.NewFakeClock())
	var order []string
	named := func(name string, priority int) *animation.Animation {
		a := linear(0, 10, time.Second)
		a.RelativePriority = priority
		a.ValueChanged = func(animation.Vector) { order = append(order, name) }
		return a
	}
	low := named("low", 0)
	highA := named("highA", 5)
	highB := named("highB", 5)
	for _, a := range []*animation.Animation{low, highB, highA} {
		a.Start(d, 0)
	}

	d.Step(16 * time.Millisecond)

	if diff := cmp.Diff([]string{"highA", "highB", "low"}, order); diff != "" {
		t.Errorf("step order mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameDriverExtremePriorities(t *testing.T) {
	d := animation.NewFrameDriver(motiontest.NewFakeClock())
	var order []string
	for _, p := range []struct {
		name     string
		priority int
	}{{"min", math.MinInt}, {"zero", 0}, {"max", math.MaxInt}} {
		a := linear(0, 10, time.Second)
		a.RelativePriority = p.priority
		a.ValueChanged = func(animation.Vector) { order = append(order, p.name) }
		a.Start(d, 0)
	}

	d.Step(16 * time.Millisecond)

	if diff := cmp.Diff([]string{"max", "zero", "min"}, order); diff != "" {
		t.Errorf("step order mismatch (-want +got):\n%s", diff)
	}
}

func TestFrameDriverSkipsAnimationsStoppedMidFrame(t *testing.T) {
	d := animation.NewFrameDriver(motiontest.NewFakeClock())
	victim := linear(0, 10, time.Second)
	victimRec := motiontest.Record(victim)
	killer := linear(0, 10, time.Second)
	killer.RelativePriority = 1
	killer.ValueChanged = func(animation.Vector) { victim.Stop(true) }

	victim.Start(d, 0)
	killer.Start(d, 0)
	d.Step(16 * time.Millisecond)

	if len(victimRec.Values) != 0 {
		t.Errorf("stopped animation was advanced: %v", victimRec.Values)
	}
	if d.Len() != 1 {
		t.Errorf("Len = %d, want 1", d.Len())
	}
}

func TestFrameDriverDropsEndedAnimations(t *testing.T) {
	d := animation.NewFrameDriver(motiontest.NewFakeClock())
	a := animation.New(animation.Linear(), 0, animation.Vec(0), animation.Vec(1))
	a.Start(d, 0)
	if d.Len() != 1 {
		t.Fatalf("Len = %d, want 1", d.Len())
	}

	d.Step(16 * time.Millisecond)

	if d.Len() != 0 || d.HasActive() {
		t.Errorf("Len = %d, HasActive = %v", d.Len(), d.HasActive())
	}
}

func TestFrameDriverTick(t *testing.T) {
	clock := motiontest.NewFakeClock()
	d := animation.NewFrameDriver(clock)
	a := linear(0, 10, time.Second)
	a.Start(d, 0)

	d.Tick()
	if !a.Value().Equal(animation.Vec(0)) {
		t.Errorf("first tick moved the value to %v", a.Value())
	}

	clock.Advance(time.Second)
	d.Tick()
	if !a.Value().Equal(animation.Vec(5)) {
		t.Errorf("Value = %v, want (5)", a.Value())
	}
}

func TestFrameDriverTimers(t *testing.T) {
	clock := motiontest.NewFakeClock()
	d := animation.NewFrameDriver(clock)
	var fired []string

	d.AfterFunc(20*time.Millisecond, func() { fired = append(fired, "late") })
	d.AfterFunc(10*time.Millisecond, func() { fired = append(fired, "early") })
	cancelled := d.AfterFunc(5*time.Millisecond, func() { fired = append(fired, "cancelled") })

	if !cancelled.Stop() {
		t.Error("first Stop should report true")
	}
	if cancelled.Stop() {
		t.Error("second Stop should report false")
	}

	clock.Advance(30 * time.Millisecond)
	d.Step(0)
	d.Step(0)

	if diff := cmp.Diff([]string{"early", "late"}, fired); diff != "" {
		t.Errorf("timers mismatch (-want +got):\n%s", diff)
	}
	if d.HasActive() {
		t.Error("fired timers should not be pending")
	}
}

func TestFrameDriverTimerPanicIsRecovered(t *testing.T) {
	handler := captureErrors(t)
	d := animation.NewFrameDriver(motiontest.NewFakeClock())
	ran := false
	d.AfterFunc(0, func() { panic("boom") })
	d.AfterFunc(0, func() { ran = true })

	d.Step(0)

	if len(handler.panics) != 1 {
		t.Errorf("recovered %d panics, want 1", len(handler.panics))
	}
	if !ran {
		t.Error("a panicking timer prevented the next one from running")
	}
}

func TestFrameDriverRegisterNil(t *testing.T) {
	handler := captureErrors(t)
	d := animation.NewFrameDriver(nil)
	d.Register(nil)
	d.Unregister(nil)

	if d.Len() != 0 || len(handler.errors) != 1 {
		t.Errorf("Len = %d, errors = %d", d.Len(), len(handler.errors))
	}
}
