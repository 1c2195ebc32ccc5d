package animation

import (
	"math"
	"time"
)

// saturationTolerance is how close a position fraction must be to 0 or 1 to
// count as saturated.
const saturationTolerance = 1e-9

// ComputeRetargetedDuration returns the duration an animation running from
// from towards oldTarget should take after being retargeted to newTarget.
//
// The first component, in declaration order, whose interval from from to
// oldTarget is non-empty and whose position fraction of newTarget along that
// interval is not saturated at 0 or 1 is chosen. That fraction is mapped back
// through the inverse of the timing function and scales oldDuration. ok is
// false when no component qualifies, the duration is not positive, or the
// result would not be a positive duration; callers keep the old duration then.
func ComputeRetargetedDuration(from, oldTarget, newTarget Vector, oldDuration time.Duration, tf TimingFunction) (d time.Duration, ok bool) {
	if oldDuration <= 0 {
		return 0, false
	}
	_, fraction, ok := retargetAxis(from, oldTarget, newTarget)
	if !ok {
		return 0, false
	}
	t := tf.Inverse(fraction, EpsilonForDuration(oldDuration))
	if !(t > 0) || math.IsInf(t, 0) {
		return 0, false
	}
	d = time.Duration(float64(oldDuration) * t)
	if d <= 0 {
		return 0, false
	}
	return d, true
}

// retargetAxis returns the first component usable for duration correction
// and the position fraction of newTarget along it.
func retargetAxis(from, oldTarget, newTarget Vector) (axis int, fraction float64, ok bool) {
	for i := range newTarget {
		f, ok := newTarget.PositionFraction(i, from, oldTarget)
		if !ok || saturated(f) {
			continue
		}
		return i, f, true
	}
	return -1, 0, false
}

func saturated(f float64) bool {
	return math.Abs(f) <= saturationTolerance || math.Abs(f-1) <= saturationTolerance
}
