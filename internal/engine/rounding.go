package engine

import "math"

// ceilEpsilon absorbs floating-point noise so that an exact quotient such as
// 32 / (32/12) counts 12 panels rather than 13.
const ceilEpsilon = 1e-9

// ceilCount returns the number of whole panels needed to cover span with
// panels of the given width.
func ceilCount(span, width float64) int {
	if span <= 0 || width <= 0 {
		return 0
	}
	return int(math.Ceil(span/width - ceilEpsilon))
}

// ceilTo rounds v up to the next multiple of step. Unlike ceilCount it
// never absorbs noise: the result is a panel length and must not fall short
// of v.
func ceilTo(v, step float64) float64 {
	r := math.Ceil(v/step) * step
	if r < v {
		r += step
	}
	return r
}

// roundToInch rounds a length in feet to the nearest whole inch.
func roundToInch(feet float64) float64 {
	return math.Round(feet*12) / 12
}

// slopeLength is the rafter length for a run and rise.
func slopeLength(run, rise float64) float64 {
	return math.Hypot(run, rise)
}
