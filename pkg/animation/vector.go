package animation

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Vector is the animatable representation of a value: a fixed-arity list of
// real components. The engine never interprets what the components mean.
//
// Binary operations on vectors of different arity operate on the common
// prefix; animating between vectors of different arity is a precondition
// violation.
type Vector []float64

// Vec returns a vector with the given components.
func Vec(components ...float64) Vector {
	return Vector(components)
}

// Clone returns a copy of v that shares no storage with it.
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Lerp linearly interpolates componentwise from v towards to by the amount t.
// The endpoints are returned exactly at t == 0 and t == 1.
func (v Vector) Lerp(to Vector, t float64) Vector {
	switch t {
	case 0:
		return v.Clone()
	case 1:
		return to.Clone()
	}
	n := min(len(v), len(to))
	out := make(Vector, n)
	for i := range n {
		out[i] = v[i] + (to[i]-v[i])*t
	}
	return out
}

// Sub returns v - o.
func (v Vector) Sub(o Vector) Vector {
	n := min(len(v), len(o))
	out := make(Vector, n)
	for i := range n {
		out[i] = v[i] - o[i]
	}
	return out
}

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector {
	out := make(Vector, len(v))
	for i, c := range v {
		out[i] = c * s
	}
	return out
}

// Equal reports whether v and o have the same arity and components.
func (v Vector) Equal(o Vector) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}
	return true
}

// PositionFraction returns where component i of v lies along the interval
// from[i] to to[i], as a fraction of that interval. ok is false when the
// index is out of range or the interval is empty.
func (v Vector) PositionFraction(i int, from, to Vector) (fraction float64, ok bool) {
	if i < 0 || i >= len(v) || i >= len(from) || i >= len(to) {
		return 0, false
	}
	span := to[i] - from[i]
	if span == 0 {
		return 0, false
	}
	return (v[i] - from[i]) / span, true
}

// Integral rounds every component to the nearest device pixel for a display
// with the given scale factor. A non-positive scale returns v unchanged.
//
// Rounding goes through 26.6 fixed point, which limits components to about
// ±3.3e7 device pixels; larger components are returned unrounded.
func (v Vector) Integral(scale float64) Vector {
	if scale <= 0 {
		return v.Clone()
	}
	out := make(Vector, len(v))
	for i, c := range v {
		device := c * scale
		if math.IsNaN(device) || math.Abs(device) >= 1<<25 {
			out[i] = c
			continue
		}
		px := fixed.Int26_6(math.Round(device * 64)).Round()
		out[i] = float64(px) / scale
	}
	return out
}

func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
	}
	sb.WriteByte(')')
	return sb.String()
}
