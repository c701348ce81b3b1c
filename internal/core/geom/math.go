// Package geom holds the fixed-point conversion shared by the layout
// engine's pixel-grid rounding pass and the text measurer's glyph
// metrics, both of which operate in the same 1/64-pixel domain.
package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Unfix converts a fixed.Int26_6 value (1/64 fractional precision) to float64.
func Unfix(x fixed.Int26_6) float64 {
	const shift, mask = 6, 1<<6 - 1
	if x >= 0 {
		return float64(x>>shift) + float64(x&mask)/64
	}
	x = -x
	if x >= 0 {
		return -(float64(x>>shift) + float64(x&mask)/64)
	}
	return 0
}

// Fix converts a float64 value to fixed.Int26_6 (1/64 pixel precision).
func Fix(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(x * 64))
}
