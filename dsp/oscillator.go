package dsp

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/kick/constant"
)

// TwoPi is one oscillator period in radians
const TwoPi = 2 * math32.Pi

// Bank is a set of phase-accumulating sine partials.
// Partial 0 is the fundamental, 1..Overtones are overtones.
type Bank struct {
	phase [constant.Partials]float32
}

// Multiplier returns the frequency ratio of partial k for an overtone factor.
// The fundamental is always 1.
func Multiplier(k int, factor float32) float32 {
	return 1 + float32(k)*factor
}

// Sample returns sin of partial k's phase, then advances it by one sample
func (b *Bank) Sample(k int, dt, freq, mult float32) float32 {
	s := math32.Sin(b.phase[k])
	b.phase[k] += TwoPi * dt * freq * mult
	return s
}

// Wrap reduces every phase into [0, 2π)
func (b *Bank) Wrap() {
	for k := range b.phase {
		b.phase[k] = wrapPhase(b.phase[k])
	}
}

// Phase returns partial k's accumulator
func (b *Bank) Phase(k int) float32 {
	return b.phase[k]
}

// Reset zeroes every accumulator
func (b *Bank) Reset() {
	b.phase = [constant.Partials]float32{}
}

func wrapPhase(p float32) float32 {
	if math32.IsNaN(p) || math32.IsInf(p, 0) {
		return 0
	}
	p = math32.Mod(p, TwoPi)
	if p < 0 {
		p += TwoPi
	}
	// Rounding on the negative branch can land exactly on the period
	if p >= TwoPi {
		p = 0
	}
	return p
}
