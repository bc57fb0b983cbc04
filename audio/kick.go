package audio

import (
	"time"

	"github.com/lixenwraith/kick/constant"
)

// Kick owns a fixed bank of voices and sums the active ones into one buffer
type Kick struct {
	voices [constant.MaxVoices]Voice
	active int
}

// NewKick constructs every voice up front; only the active count renders
func NewKick() *Kick {
	k := &Kick{active: constant.DefaultActiveVoices}
	for i := range k.voices {
		k.voices[i].init()
	}
	return k
}

// Voice returns voice i (0-based)
func (k *Kick) Voice(i int) *Voice {
	return &k.voices[i]
}

// SetActiveVoices bounds n to [0, MaxVoices]
func (k *Kick) SetActiveVoices(n int) {
	if n < 0 {
		n = 0
	}
	if n > constant.MaxVoices {
		n = constant.MaxVoices
	}
	k.active = n
}

// ActiveVoices returns how many voices render
func (k *Kick) ActiveVoices() int {
	return k.active
}

// Render clears out and mixes every active voice into it
func (k *Kick) Render(out []float32, sampleRate int, running time.Duration) {
	if len(out) == 0 {
		panic("audio: render into empty buffer")
	}
	for i := range out {
		out[i] = 0
	}
	for i := 0; i < k.active; i++ {
		k.voices[i].Mix(out, sampleRate, running)
	}
}

// Reset silences every voice, active or not
func (k *Kick) Reset() {
	for i := range k.voices {
		k.voices[i].Reset()
	}
}

// Trigger plays note on voice i with that voice's retrigger setting
func (k *Kick) Trigger(i int, n Note) {
	k.voices[i].SetNote(n)
}

// Preview returns the first voice's envelope picture
func (k *Kick) Preview() *Preview {
	return k.voices[0].Preview()
}

// OnChange forwards the first voice's invalidation callback
func (k *Kick) OnChange(fn func()) {
	k.voices[0].OnChange(fn)
}
