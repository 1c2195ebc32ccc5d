package animation

import "math"

// Function presets. These follow Robert Penner's easing equations.
var (
	EaseInSine    = Function("easeInSine", easeInSine)
	EaseOutSine   = Function("easeOutSine", easeOutSine)
	EaseInOutSine = Function("easeInOutSine", easeInOutSine)

	EaseInQuad    = Function("easeInQuad", easeInQuad)
	EaseOutQuad   = Function("easeOutQuad", easeOutQuad)
	EaseInOutQuad = Function("easeInOutQuad", easeInOutQuad)

	EaseInCubic    = Function("easeInCubic", easeInCubic)
	EaseOutCubic   = Function("easeOutCubic", easeOutCubic)
	EaseInOutCubic = Function("easeInOutCubic", easeInOutCubic)

	EaseInCirc    = Function("easeInCirc", easeInCirc)
	EaseOutCirc   = Function("easeOutCirc", easeOutCirc)
	EaseInOutCirc = Function("easeInOutCirc", easeInOutCirc)

	EaseInExpo    = Function("easeInExpo", easeInExpo)
	EaseOutExpo   = Function("easeOutExpo", easeOutExpo)
	EaseInOutExpo = Function("easeInOutExpo", easeInOutExpo)

	// EaseInBack and EaseOutBack overshoot and are not monotonic, so
	// [TimingFunction.Inverse] may return an inaccurate time for them.
	EaseInBack  = Function("easeInBack", easeInBack)
	EaseOutBack = Function("easeOutBack", easeOutBack)

	EaseInBounce    = Function("easeInBounce", easeInBounce)
	EaseOutBounce   = Function("easeOutBounce", easeOutBounce)
	EaseInOutBounce = Function("easeInOutBounce", easeInOutBounce)
)

func easeInSine(t float64) float64 {
	return 1 - math.Cos((t*math.Pi)/2)
}

func easeOutSine(t float64) float64 {
	return math.Sin((t * math.Pi) / 2)
}

func easeInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

func easeInQuad(t float64) float64 {
	return t * t
}

func easeOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - (-2*t+2)*(-2*t+2)/2
}

func easeInCubic(t float64) float64 {
	return t * t * t
}

func easeOutCubic(t float64) float64 {
	return 1 - (1-t)*(1-t)*(1-t)
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - (-2*t+2)*(-2*t+2)*(-2*t+2)/2
}

func easeInCirc(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

func easeOutCirc(t float64) float64 {
	return math.Sqrt(1 - (t-1)*(t-1))
}

func easeInOutCirc(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-(2*t)*(2*t))) / 2
	}
	return (math.Sqrt(1-(-2*t+2)*(-2*t+2)) + 1) / 2
}

func easeInExpo(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

func easeOutExpo(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func easeInOutExpo(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

func easeInBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return c3*t*t*t - c1*t*t
}

func easeOutBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	return 1 + c3*(t-1)*(t-1)*(t-1) + c1*(t-1)*(t-1)
}

func easeOutBounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75

	switch {
	case t < 1.0/d1:
		return n1 * t * t
	case t < 2.0/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

func easeInBounce(t float64) float64 {
	return 1 - easeOutBounce(1-t)
}

func easeInOutBounce(t float64) float64 {
	if t < 0.5 {
		return (1 - easeOutBounce(1-2*t)) / 2
	}
	return (1 + easeOutBounce(2*t-1)) / 2
}
