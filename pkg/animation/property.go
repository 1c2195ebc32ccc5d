package animation

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/f64"
	"honnef.co/go/curve"
)

// Property converts values of type T to and from their animatable [Vector]
// representation.
type Property[T any] interface {
	Vector(v T) Vector
	Value(v Vector) T
}

// PropertyFuncs adapts a pair of conversion functions to [Property].
type PropertyFuncs[T any] struct {
	ToVector   func(T) Vector
	FromVector func(Vector) T
}

func (p PropertyFuncs[T]) Vector(v T) Vector { return p.ToVector(v) }
func (p PropertyFuncs[T]) Value(v Vector) T  { return p.FromVector(v) }

// Scalar returns the property of a numeric type. Integer values are rounded
// to the nearest integer when converted back.
func Scalar[T constraints.Integer | constraints.Float]() Property[T] {
	return scalarProperty[T]{}
}

type scalarProperty[T constraints.Integer | constraints.Float] struct{}

func (scalarProperty[T]) Vector(v T) Vector { return Vector{float64(v)} }

func (scalarProperty[T]) Value(v Vector) T {
	if len(v) == 0 {
		return 0
	}
	f := v[0]
	half := 0.5
	if T(half) == 0 {
		f = math.Round(f)
	}
	return T(f)
}

// Common properties.
var (
	Float64 = Scalar[float64]()

	PointProperty Property[curve.Point] = PropertyFuncs[curve.Point]{
		ToVector:   func(p curve.Point) Vector { return Vector{p.X, p.Y} },
		FromVector: func(v Vector) curve.Point { return curve.Pt(component(v, 0), component(v, 1)) },
	}

	Vec2Property Property[f64.Vec2] = PropertyFuncs[f64.Vec2]{
		ToVector:   func(p f64.Vec2) Vector { return Vector{p[0], p[1]} },
		FromVector: func(v Vector) f64.Vec2 { return f64.Vec2{component(v, 0), component(v, 1)} },
	}

	// Vec4Property animates four-component values such as rectangles
	// stored as (x, y, width, height).
	Vec4Property Property[f64.Vec4] = PropertyFuncs[f64.Vec4]{
		ToVector: func(p f64.Vec4) Vector { return Vector{p[0], p[1], p[2], p[3]} },
		FromVector: func(v Vector) f64.Vec4 {
			return f64.Vec4{component(v, 0), component(v, 1), component(v, 2), component(v, 3)}
		},
	}
)

func component(v Vector, i int) float64 {
	if i < len(v) {
		return v[i]
	}
	return 0
}
