package animation

import (
	"math"

	"honnef.co/go/curve"
)

const (
	// newtonIterations bounds the Newton-Raphson phase of the solver.
	newtonIterations = 8
	// minSlope is the derivative magnitude below which Newton is abandoned.
	minSlope = 1e-6
	// maxBisections bounds the fallback phase; 64 halvings exhaust float64 precision on [0,1].
	maxBisections = 64
	// DefaultEpsilon is the x-domain tolerance used when no duration is known.
	DefaultEpsilon = 1e-6
)

// UnitBezier is a cubic bezier curve with implicit endpoints (0,0) and (1,1),
// defined by its two free control points.
//
// The x coordinates of both control points must lie in [0, 1] for the curve to
// be monotonic in x. Solving a non-monotonic curve is a precondition violation:
// the solver still terminates but may return an inaccurate root.
type UnitBezier struct {
	P1 curve.Point
	P2 curve.Point

	ax, bx, cx float64
	ay, by, cy float64
}

// NewUnitBezier returns the unit bezier with control points (x1,y1) and (x2,y2).
func NewUnitBezier(x1, y1, x2, y2 float64) UnitBezier {
	b := UnitBezier{P1: curve.Pt(x1, y1), P2: curve.Pt(x2, y2)}
	b.cx = 3 * x1
	b.bx = 3*(x2-x1) - b.cx
	b.ax = 1 - b.cx - b.bx
	b.cy = 3 * y1
	b.by = 3*(y2-y1) - b.cy
	b.ay = 1 - b.cy - b.by
	return b
}

// SolveUnitBezier returns the y value of the unit bezier (p1x,p1y),(p2x,p2y)
// at the input x, where epsilon is the required precision on x.
func SolveUnitBezier(p1x, p1y, p2x, p2y, x, epsilon float64) float64 {
	return NewUnitBezier(p1x, p1y, p2x, p2y).Solve(x, epsilon)
}

// Solve returns the output progress for the input time x in [0, 1].
func (b UnitBezier) Solve(x, epsilon float64) float64 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 1
	}
	return b.sampleY(b.solveX(x, epsilon))
}

// SolveInverse returns the input time whose output progress is y. It is the
// inverse of Solve for curves that are monotonic in both coordinates.
func (b UnitBezier) SolveInverse(y, epsilon float64) float64 {
	if y <= 0 {
		return 0
	}
	if y >= 1 {
		return 1
	}
	t := solveCubic(b.sampleY, b.sampleYDerivative, y, epsilon)
	return b.sampleX(t)
}

// Monotonic reports whether both control points have x in [0, 1], which
// guarantees the curve's x component never decreases.
func (b UnitBezier) Monotonic() bool {
	return b.P1.X >= 0 && b.P1.X <= 1 && b.P2.X >= 0 && b.P2.X <= 1
}

// Curve returns the full cubic, including the implicit endpoints.
func (b UnitBezier) Curve() curve.CubicBez {
	return curve.CubicBez{
		P0: curve.Pt(0, 0),
		P1: b.P1,
		P2: b.P2,
		P3: curve.Pt(1, 1),
	}
}

// Point returns the point on the curve at parameter t.
func (b UnitBezier) Point(t float64) curve.Point {
	return curve.Pt(b.sampleX(t), b.sampleY(t))
}

func (b UnitBezier) solveX(x, epsilon float64) float64 {
	return solveCubic(b.sampleX, b.sampleXDerivative, x, epsilon)
}

func (b UnitBezier) sampleX(t float64) float64 {
	return ((b.ax*t+b.bx)*t + b.cx) * t
}

func (b UnitBezier) sampleY(t float64) float64 {
	return ((b.ay*t+b.by)*t + b.cy) * t
}

func (b UnitBezier) sampleXDerivative(t float64) float64 {
	return (3*b.ax*t+2*b.bx)*t + b.cx
}

func (b UnitBezier) sampleYDerivative(t float64) float64 {
	return (3*b.ay*t+2*b.by)*t + b.cy
}

// solveCubic finds t such that sample(t) == v, using Newton's method first and
// bisection on [0, 1] when the slope flattens or Newton does not converge.
func solveCubic(sample, derivative func(float64) float64, v, epsilon float64) float64 {
	t := v
	for range newtonIterations {
		d := sample(t) - v
		if math.Abs(d) < epsilon {
			return t
		}
		slope := derivative(t)
		if math.Abs(slope) < minSlope {
			break
		}
		t -= d / slope
	}

	lo, hi := 0.0, 1.0
	t = v
	if t < lo {
		return lo
	}
	if t > hi {
		return hi
	}
	for range maxBisections {
		s := sample(t)
		if math.Abs(s-v) < epsilon {
			return t
		}
		if v > s {
			lo = t
		} else {
			hi = t
		}
		next := lo + (hi-lo)*0.5
		if next == t {
			break
		}
		t = next
	}
	return t
}
