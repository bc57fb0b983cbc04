package dsp

import (
	"math/bits"

	"github.com/chewxy/math32"

	"github.com/lixenwraith/kick/constant"
)

const (
	lcgMultiplier uint32 = 1103515245
	lcgIncrement  uint32 = 12345

	// MinNoiseOctaves and MaxNoiseOctaves bound the continuous octave control
	MinNoiseOctaves float32 = 1.99999
	MaxNoiseOctaves float32 = constant.PinkNoiseLayers - 1 + 0.99999
)

// LCG advances state and returns a draw in [-1, 1).
// The 20th power skews draws toward -1 for a harsher texture.
func LCG(state *uint32) float32 {
	*state = (*state + lcgIncrement) * lcgMultiplier
	x := float32(float64(*state) * 0x1p-32)
	return -1 + math32.Pow(x, 20)*2
}

// Pink is a Voss-McCartney pink noise source.
// Layer 0 redraws every sample; layer j>0 redraws once every 2^j samples,
// selected by the trailing zero count of a free-running counter.
type Pink struct {
	state   [constant.PinkNoiseLayers]uint32
	value   [constant.PinkNoiseLayers]float32
	sum     float32
	counter uint16
	octaves float32 // control value of the previous draw
}

// NewPink returns a generator with each layer seeded by its index
func NewPink() *Pink {
	p := &Pink{}
	p.Reset()
	return p
}

// Reset restores construction state
func (p *Pink) Reset() {
	for i := range p.state {
		p.state[i] = uint32(i)
		p.value[i] = 0
	}
	p.sum = 0
	p.counter = 1
	p.octaves = 0
}

// Next draws one sample in [-1, 1] for the given octave count.
// Layer gains are clamp(octaves-j, 0, 1), so they sum to octaves and the
// topmost fractional octave fades in continuously.
func (p *Pink) Next(octaves float32) float32 {
	octaves = Clamp(octaves, MinNoiseOctaves, MaxNoiseOctaves)
	if octaves < p.octaves {
		p.shrink(octaves)
	}
	p.octaves = octaves

	p.sum -= p.value[0]
	p.value[0] = LCG(&p.state[0])
	p.sum += p.value[0]

	idx := bits.TrailingZeros16(p.counter) + 1
	p.sum -= p.value[idx]
	if gain := octaves - float32(idx); gain > 0 {
		if gain > 1 {
			gain = 1
		}
		p.value[idx] = LCG(&p.state[idx]) * gain
		p.sum += p.value[idx]
	} else {
		p.value[idx] = 0
	}

	p.counter++
	if p.counter == 0 {
		// Full cycle; resum to shed incremental rounding drift
		p.resum()
	}

	return Clamp(p.sum/octaves, -1, 1)
}

// Counter returns the layer-selection counter
func (p *Pink) Counter() uint16 {
	return p.counter
}

// shrink rescales cached layers to the gains of a lower octave count, so
// layers that dropped out stop contributing before their next redraw
func (p *Pink) shrink(octaves float32) {
	for j := 1; j < len(p.value); j++ {
		prev := Clamp(p.octaves-float32(j), 0, 1)
		gain := Clamp(octaves-float32(j), 0, 1)
		switch {
		case gain == 0 || prev == 0:
			p.value[j] = 0
		case gain < prev:
			p.value[j] *= gain / prev
		}
	}
	p.resum()
}

func (p *Pink) resum() {
	var s float32
	for _, v := range p.value {
		s += v
	}
	p.sum = s
}
