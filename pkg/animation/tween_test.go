package animation_test

import (
	"testing"
	"time"

	"golang.org/x/image/math/f64"
	"honnef.co/go/curve"

	"github.com/go-drift/motion/pkg/animation"
)

func TestTweenFloat(t *testing.T) {
	tw := animation.NewTween(animation.Float64, animation.Linear(), time.Second, 0, 10)
	var changes []float64
	var finished []float64
	tw.OnChange(func(v float64) { changes = append(changes, v) })
	tw.OnFinish(func(v float64) { finished = append(finished, v) })

	if got := tw.Evaluate(0.25); got != 2.5 {
		t.Errorf("Evaluate(0.25) = %v, want 2.5", got)
	}

	tw.Advance(time.Second)
	if got := tw.Value(); got != 5 {
		t.Errorf("Value = %v, want 5", got)
	}

	tw.SetTarget(20)
	if got := tw.Target(); got != 20 {
		t.Errorf("Target = %v, want 20", got)
	}
	for tw.State() != animation.StateEnded {
		tw.Advance(time.Second)
	}

	if len(finished) != 1 || finished[0] != 20 {
		t.Errorf("finished = %v, want [20]", finished)
	}
	if changes[len(changes)-1] != 20 {
		t.Errorf("last change = %v, want 20", changes[len(changes)-1])
	}
}

func TestTweenIntRounds(t *testing.T) {
	tw := animation.NewTween(animation.Scalar[int](), animation.Linear(), time.Second, 0, 3)
	tw.Advance(time.Second)
	if got := tw.Value(); got != 2 {
		t.Errorf("Value = %v, want 2", got)
	}
	tw.SetValue(7)
	if got := tw.Animation.Value(); !got.Equal(animation.Vec(7)) {
		t.Errorf("vector value = %v, want (7)", got)
	}
}

func TestTweenPoint(t *testing.T) {
	tw := animation.NewTween(animation.PointProperty, animation.Linear(), time.Second, curve.Pt(0, 0), curve.Pt(10, 20))
	tw.Advance(time.Second)
	if got := tw.Value(); got != curve.Pt(5, 10) {
		t.Errorf("Value = %v, want (5, 10)", got)
	}
}

func TestTweenClearCallbacks(t *testing.T) {
	tw := animation.NewTween(animation.Float64, animation.Linear(), time.Second, 0, 1)
	tw.OnChange(func(float64) {})
	tw.OnFinish(func(float64) {})
	tw.OnChange(nil)
	tw.OnFinish(nil)
	if tw.ValueChanged != nil || tw.Completion != nil {
		t.Error("nil callbacks should clear the animation callbacks")
	}
}

func TestProperties(t *testing.T) {
	if got := animation.Scalar[uint8]().Value(animation.Vec(2.6)); got != 3 {
		t.Errorf("uint8 Value = %v, want 3", got)
	}
	if got := animation.Scalar[float32]().Value(animation.Vec(2.5)); got != 2.5 {
		t.Errorf("float32 Value = %v, want 2.5", got)
	}
	if got := animation.Float64.Value(nil); got != 0 {
		t.Errorf("empty Value = %v, want 0", got)
	}

	v2 := f64.Vec2{1, 2}
	if got := animation.Vec2Property.Value(animation.Vec2Property.Vector(v2)); got != v2 {
		t.Errorf("Vec2 = %v, want %v", got, v2)
	}
	if got := animation.Vec4Property.Value(animation.Vec(1, 2)); got != (f64.Vec4{1, 2, 0, 0}) {
		t.Errorf("short Vec4 = %v", got)
	}

	custom := animation.PropertyFuncs[string]{
		ToVector:   func(s string) animation.Vector { return animation.Vec(float64(len(s))) },
		FromVector: func(v animation.Vector) string { return string(make([]byte, int(v[0]))) },
	}
	if got := custom.Value(custom.Vector("abc")); len(got) != 3 {
		t.Errorf("custom round trip length = %d, want 3", len(got))
	}
}
