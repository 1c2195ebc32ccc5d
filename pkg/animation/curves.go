package animation

import (
	"fmt"
	"math"
	"time"
)

// TimingKind identifies the variant of a [TimingFunction].
type TimingKind int

const (
	// KindLinear maps input time to itself.
	KindLinear TimingKind = iota
	// KindBezier evaluates a [UnitBezier].
	KindBezier
	// KindFunction evaluates an arbitrary function.
	KindFunction
)

func (k TimingKind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindBezier:
		return "bezier"
	case KindFunction:
		return "function"
	default:
		return fmt.Sprintf("TimingKind(%d)", int(k))
	}
}

// TimingFunction converts linear input time (0 to 1) into output progress
// (also 0 to 1). The zero value is [Linear].
//
// A TimingFunction is an immutable value. Use [Linear], [Bezier] or [Function]
// to construct one, or one of the presets such as [EaseInEaseOut].
type TimingFunction struct {
	kind   TimingKind
	bezier UnitBezier
	fn     func(float64) float64
	name   string
}

// Linear returns the identity timing function.
func Linear() TimingFunction {
	return TimingFunction{kind: KindLinear, name: "linear"}
}

// Bezier returns a timing function driven by the unit bezier with control
// points (x1,y1) and (x2,y2). Equivalent to CSS cubic-bezier().
func Bezier(x1, y1, x2, y2 float64) TimingFunction {
	return TimingFunction{kind: KindBezier, bezier: NewUnitBezier(x1, y1, x2, y2)}
}

// Function returns a timing function that evaluates fn. The function should
// be deterministic and map 0 to 0 and 1 to 1.
func Function(name string, fn func(float64) float64) TimingFunction {
	if fn == nil {
		return Linear()
	}
	return TimingFunction{kind: KindFunction, fn: fn, name: name}
}

func named(name string, tf TimingFunction) TimingFunction {
	tf.name = name
	return tf
}

// Presets.
var (
	// EaseIn is equivalent to kCAMediaTimingFunctionEaseIn.
	EaseIn = named("easeIn", Bezier(0.42, 0.0, 1.0, 1.0))
	// EaseOut is equivalent to kCAMediaTimingFunctionEaseOut.
	EaseOut = named("easeOut", Bezier(0.0, 0.0, 0.58, 1.0))
	// EaseInEaseOut is equivalent to kCAMediaTimingFunctionEaseInEaseOut.
	EaseInEaseOut = named("easeInEaseOut", Bezier(0.42, 0.0, 0.58, 1.0))
	// SwiftOut is inspired by the default curve in Google Material Design.
	SwiftOut = named("swiftOut", Bezier(0.4, 0.0, 0.2, 1.0))
	// Ease is equivalent to CSS ease.
	Ease = named("ease", Bezier(0.25, 0.1, 0.25, 1.0))
	// IOSNavigation approximates iOS navigation transition easing.
	IOSNavigation = named("iosNavigation", Bezier(0.22, 1.0, 0.36, 1.0))
)

var presets = map[string]TimingFunction{}

func init() {
	for _, tf := range []TimingFunction{
		Linear(), EaseIn, EaseOut, EaseInEaseOut, SwiftOut, Ease, IOSNavigation,
		EaseInSine, EaseOutSine, EaseInOutSine,
		EaseInQuad, EaseOutQuad, EaseInOutQuad,
		EaseInCubic, EaseOutCubic, EaseInOutCubic,
		EaseInCirc, EaseOutCirc, EaseInOutCirc,
		EaseInExpo, EaseOutExpo, EaseInOutExpo,
		EaseInBack, EaseOutBack,
		EaseInBounce, EaseOutBounce, EaseInOutBounce,
	} {
		presets[tf.name] = tf
	}
}

// Preset returns the named preset timing function.
func Preset(name string) (TimingFunction, bool) {
	tf, ok := presets[name]
	return tf, ok
}

// PresetNames returns the names of all presets in unspecified order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}

// Kind returns the variant of the timing function.
func (tf TimingFunction) Kind() TimingKind {
	return tf.kind
}

// UnitBezier returns the curve of a bezier timing function.
func (tf TimingFunction) UnitBezier() (UnitBezier, bool) {
	return tf.bezier, tf.kind == KindBezier
}

// Solve transforms the input time x with the given precision.
func (tf TimingFunction) Solve(x, epsilon float64) float64 {
	switch tf.kind {
	case KindBezier:
		return tf.bezier.Solve(x, epsilon)
	case KindFunction:
		return tf.fn(x)
	default:
		return x
	}
}

// SolveForDuration transforms the input time x, deriving the required
// precision from the duration of the animation it drives.
func (tf TimingFunction) SolveForDuration(x float64, d time.Duration) float64 {
	return tf.Solve(x, EpsilonForDuration(d))
}

// Evaluate transforms the input time x using [DefaultEpsilon].
func (tf TimingFunction) Evaluate(x float64) float64 {
	return tf.Solve(x, DefaultEpsilon)
}

// Inverse returns the input time at which the timing function reaches the
// progress y. Outside [0, 1] the inverse extrapolates linearly.
func (tf TimingFunction) Inverse(y, epsilon float64) float64 {
	if y < 0 || y > 1 {
		return y
	}
	switch tf.kind {
	case KindBezier:
		return tf.bezier.SolveInverse(y, epsilon)
	case KindFunction:
		return bisect(tf.fn, y, epsilon)
	default:
		return y
	}
}

// Equal reports whether two timing functions are the same curve. Function
// curves compare by name only.
func (tf TimingFunction) Equal(o TimingFunction) bool {
	if tf.kind != o.kind {
		return false
	}
	switch tf.kind {
	case KindBezier:
		return tf.bezier.P1 == o.bezier.P1 && tf.bezier.P2 == o.bezier.P2
	case KindFunction:
		return tf.name == o.name
	default:
		return true
	}
}

// Name returns the preset name, or "" for unnamed curves.
func (tf TimingFunction) Name() string {
	return tf.name
}

func (tf TimingFunction) String() string {
	if tf.name != "" {
		return tf.name
	}
	switch tf.kind {
	case KindBezier:
		return fmt.Sprintf("bezier(x1: %g, y1: %g, x2: %g, y2: %g)",
			tf.bezier.P1.X, tf.bezier.P1.Y, tf.bezier.P2.X, tf.bezier.P2.Y)
	case KindFunction:
		return "function"
	default:
		return "linear"
	}
}

// EpsilonForDuration returns the solver precision for an animation lasting d:
// a thousandth of a second expressed in unit time.
func EpsilonForDuration(d time.Duration) float64 {
	if d <= 0 {
		return DefaultEpsilon
	}
	return 1.0 / (d.Seconds() * 1000.0)
}

// bisect finds x in [0, 1] with fn(x) == y for a non-decreasing fn.
func bisect(fn func(float64) float64, y, epsilon float64) float64 {
	lo, hi := 0.0, 1.0
	x := y
	for range maxBisections {
		v := fn(x)
		if math.Abs(v-y) < epsilon {
			return x
		}
		if y > v {
			lo = x
		} else {
			hi = x
		}
		next := lo + (hi-lo)*0.5
		if next == x {
			break
		}
		x = next
	}
	return x
}
