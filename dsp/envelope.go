package dsp

import "github.com/chewxy/math32"

const (
	// BlendFloor is the smallest effective time constant
	BlendFloor float32 = 1e-12

	// minDecayTime guards the alpha ratio against a zero sweep time
	minDecayTime float32 = 1e-9
)

// Plerp interpolates from a to b by alpha (clamped) and raises the result to power
func Plerp(a, b, alpha, power float32) float32 {
	return math32.Pow(a+(b-a)*Clamp01(alpha), power)
}

// Decay evaluates an exponential move from start toward end at time t.
// The time constant itself sweeps from a to b over decayTime, shaped by power.
func Decay(t, start, end, a, b, decayTime, power float32) float32 {
	if decayTime < minDecayTime {
		decayTime = minDecayTime
	}

	blend := Plerp(a, b, t/decayTime, power)
	if !(blend >= BlendFloor) {
		blend = BlendFloor
	}

	return start + (end-start)*(1-math32.Exp(-t/blend))
}

// Envelope is a compiled set of Decay shape constants
type Envelope struct {
	A, B  float32
	Time  float32
	Power float32
}

// CompileEnvelope maps normalized time, shape and exponent controls
func CompileEnvelope(time, shapeA, shapeB, exp float32) Envelope {
	return Envelope{
		A:     Compile(CurveShape, shapeA),
		B:     Compile(CurveShape, shapeB),
		Time:  Compile(CurveTime, time),
		Power: Compile(CurveShape, exp),
	}
}

// At evaluates the envelope from start to end at time t
func (e Envelope) At(t, start, end float32) float32 {
	return Decay(t, start, end, e.A, e.B, e.Time, e.Power)
}
