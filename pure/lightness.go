package pure

import "math"

// Linear segment threshold and slope of the CIE 1931 lightness curve.
const (
	linearThreshold = 8.0
	linearSlope     = 903.3
)

// Luminance maps a lightness value L* on [0, 100] onto relative luminance Y on [0, 1].
//
// Low lightness uses the linear segment to avoid the steep slope of the cube
// near zero; everything above the threshold uses the cubic relation.
func Luminance(l float64) float64 {
	if l <= linearThreshold {
		return l / linearSlope
	}
	t := (l + 16.0) / 116.0
	return t * t * t
}

// Lightness returns the perceptually corrected brightness for a linear input
// on [0, inputMax], scaled and rounded onto [0, outputMax].
//
// Inputs above inputMax are treated as inputMax. The result never exceeds
// outputMax. Lightness panics if inputMax is 0.
func Lightness(input, inputMax uint, outputMax uint64) uint64 {
	if inputMax == 0 {
		panic("inputMax should be greater than 0")
	}
	if input > inputMax {
		input = inputMax
	}

	l := float64(input) * 100.0 / float64(inputMax)
	y := Luminance(l)

	// The conversion rounds the product before the addition, which keeps
	// architectures with fused multiply-add from producing a different table.
	v := math.Floor(float64(y*float64(outputMax)) + 0.5)
	if v >= float64(outputMax) {
		return outputMax
	}
	if v <= 0 {
		return 0
	}
	return uint64(v)
}
