// Package dsp holds the sample-level building blocks of a kick voice:
// curve mapping, envelopes, the oscillator bank, pink noise and the
// retrigger timer. Everything here is allocation free and float32.
package dsp

import "github.com/chewxy/math32"

// CurveKind selects the mapping from a normalized control to working units
type CurveKind int

const (
	CurveTime      CurveKind = iota // 0.001 * 10^(x*4) seconds
	CurveShape                      // 0.01 * 10^(x*3), shape A/B and exponent
	CurveToneStart                  // 2^(x*14.5) Hz
	CurvePeriod                     // 0.001 * 10^(x*3) seconds
)

// Compile converts a normalized [0,1] control into its working-unit value.
// Input is clamped; NaN maps to 0.
func Compile(kind CurveKind, x float32) float32 {
	x = Clamp01(x)

	switch kind {
	case CurveTime:
		return 0.001 * math32.Pow(10, x*4)
	case CurveShape:
		return 0.01 * math32.Pow(10, x*3)
	case CurveToneStart:
		return math32.Pow(2, x*14.5)
	case CurvePeriod:
		return 0.001 * math32.Pow(10, x*3)
	default:
		return x
	}
}

// Clamp01 bounds x to [0,1] with NaN mapped to 0
func Clamp01(x float32) float32 {
	return Clamp(x, 0, 1)
}

// Clamp bounds x to [lo,hi]; NaN maps to lo
func Clamp(x, lo, hi float32) float32 {
	if math32.IsNaN(x) || x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
