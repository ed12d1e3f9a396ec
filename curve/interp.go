package curve

import "sort"

// sample is one (index value, prediction) pair from a population sweep.
type sample struct {
	x float64
	y float64
}

// interpolate aligns the sampled biological curve onto one axis value by
// linear interpolation between the two bracketing samples. Outside the
// sampled range the nearest endpoint is used only within tol; farther out
// the value is absent (nil) — the biological model is undefined there and
// must not be extrapolated.
func interpolate(samples []sample, x, tol float64) *float64 {
	if len(samples) == 0 {
		return nil
	}

	first, last := samples[0], samples[len(samples)-1]
	if x < first.x {
		if first.x-x <= tol {
			v := first.y
			return &v
		}
		return nil
	}
	if x > last.x {
		if x-last.x <= tol {
			v := last.y
			return &v
		}
		return nil
	}

	// First sample with x >= target; its predecessor brackets from below.
	i := sort.Search(len(samples), func(i int) bool { return samples[i].x >= x })
	hi := samples[i]
	if hi.x == x || i == 0 {
		v := hi.y
		return &v
	}
	lo := samples[i-1]

	dx := hi.x - lo.x
	if dx == 0 {
		v := lo.y
		return &v
	}
	t := (x - lo.x) / dx
	v := lo.y + t*(hi.y-lo.y)
	return &v
}
