package audio

import (
	"math"
	"math/bits"
	"time"

	"github.com/lixenwraith/kick/constant"
	"github.com/lixenwraith/kick/dsp"
)

// compiled holds working-unit values derived from the normalized controls.
// Rebuilt on every control write, never per sample.
type compiled struct {
	toneStart    float32 // Hz before tuning
	tuneRatio    float32
	tone         dsp.Envelope
	amp          dsp.Envelope
	noise        dsp.Envelope
	period       float32 // seconds
	overtoneVols [constant.Overtones]float32
}

// automation buffers control writes until the next render
type automation struct {
	values [ParamCount]float32
	mask   uint64
	note   Note
}

// Voice is one kick synthesis unit: a pitch-swept sine with overtones,
// a pink noise layer and a retrigger timer.
// Control writes and renders must be serialized by the caller.
type Voice struct {
	params   [ParamCount]float32
	compiled compiled
	pending  automation

	note     Note
	seconds  float32 // since last note-on
	running  time.Duration
	offAt    time.Duration
	released bool

	bank   dsp.Bank
	pink   dsp.Pink
	retrig dsp.Retrigger

	preview  Preview
	dirty    bool
	onChange func()
}

// NewVoice creates a voice with every control at its default
func NewVoice() *Voice {
	v := &Voice{}
	v.init()
	return v
}

func (v *Voice) init() {
	for p, s := range paramSpecs {
		v.params[p] = s.Default
	}
	v.compile()
	v.Reset()
	v.dirty = true
}

// Reset silences the voice. Note, timers, queued automation, oscillator
// phases and noise return to construction state; controls are kept.
func (v *Voice) Reset() {
	v.pending = automation{note: NoteNone}
	v.note = NoteNone
	v.seconds = constant.VoiceIdleSeconds
	v.offAt = 0
	v.released = false
	v.retrig.Disarm()
	v.bank.Reset()
	v.pink.Reset()
}

// SetParam clamps and stores a control, then recompiles derived values
func (v *Voice) SetParam(p Param, value float32) {
	if !p.Valid() {
		return
	}
	v.params[p] = paramSpecs[p].Clamp(value)
	v.compile()
	v.invalidate()
}

// SetParamByName is SetParam addressed by control name
func (v *Voice) SetParamByName(name string, value float32) error {
	p, err := LookupParam(name)
	if err != nil {
		return err
	}
	v.SetParam(p, value)
	return nil
}

// Param returns the stored normalized value of p
func (v *Voice) Param(p Param) float32 {
	if !p.Valid() {
		return 0
	}
	return v.params[p]
}

// Automate queues a control write applied at the start of the next render
func (v *Voice) Automate(p Param, value float32) {
	if !p.Valid() {
		return
	}
	v.pending.values[p] = value
	v.pending.mask |= 1 << uint(p)
}

// AutomateNote queues a note event applied at the start of the next render
func (v *Voice) AutomateNote(n Note) {
	v.pending.note = n
}

// sync applies queued automation
func (v *Voice) sync() {
	if mask := v.pending.mask; mask != 0 {
		for mask != 0 {
			p := bits.TrailingZeros64(mask)
			v.params[p] = paramSpecs[p].Clamp(v.pending.values[p])
			mask &= mask - 1
		}
		v.pending.mask = 0
		v.compile()
		v.invalidate()
	}

	if n := v.pending.note; n != NoteNone {
		v.pending.note = NoteNone
		v.SetNote(n)
	}
}

func (v *Voice) compile() {
	p := &v.params
	c := &v.compiled

	c.toneStart = dsp.Compile(dsp.CurveToneStart, p[ParamToneStart])
	c.tuneRatio = float32(math.Pow(2, float64(p[ParamTune])/12))
	c.tone = dsp.CompileEnvelope(p[ParamToneTime], p[ParamToneShapeA], p[ParamToneShapeB], p[ParamToneShapeExp])
	c.amp = dsp.CompileEnvelope(p[ParamAmpTime], p[ParamAmpShapeA], p[ParamAmpShapeB], p[ParamAmpShapeExp])
	c.noise = dsp.CompileEnvelope(p[ParamNoiseTime], p[ParamNoiseShapeA], p[ParamNoiseShapeB], p[ParamNoiseShapeExp])
	c.period = dsp.Compile(dsp.CurvePeriod, p[ParamRetriggerPeriod])

	for k := range c.overtoneVols {
		c.overtoneVols[k] = p[OvertoneParam(k)] * p[ParamOvertoneVol]
	}

	v.retrig.SetPeriod(c.period)
}

// OnChange registers fn to run whenever a control write invalidates the preview
func (v *Voice) OnChange(fn func()) {
	v.onChange = fn
}

func (v *Voice) invalidate() {
	v.dirty = true
	if v.onChange != nil {
		v.onChange()
	}
}

// SetNote handles the note control: a MIDI note triggers, NoteOff releases,
// NoteNone is ignored
func (v *Voice) SetNote(n Note) {
	switch {
	case n == NoteOff:
		v.NoteOff(v.running)
	case n.Valid():
		v.NoteOn(n, int(v.params[ParamRetrigger]))
	}
}

// NoteOn restarts the envelopes for note and arms the retrigger timer.
// Oscillator phase carries over to avoid a click.
func (v *Voice) NoteOn(n Note, retrigger int) {
	if n.Valid() {
		v.note = n
	}
	v.seconds = 0
	v.released = false
	v.retrig.Arm(retrigger, v.compiled.period)
}

// NoteOff records the release time. Envelopes are time based, so the
// sound still decays on its own.
func (v *Voice) NoteOff(at time.Duration) {
	v.offAt = at
	v.released = true
}

// Released reports whether a note-off arrived after the last note-on, and when
func (v *Voice) Released() (time.Duration, bool) {
	return v.offAt, v.released
}

// Note returns the current note
func (v *Voice) Note() Note {
	return v.note
}

// Elapsed returns seconds since the last note-on or retrigger
func (v *Voice) Elapsed() float32 {
	return v.seconds
}

// Retriggers returns the repetitions still pending
func (v *Voice) Retriggers() int {
	return v.retrig.Count()
}

// Phase returns the accumulator of partial k
func (v *Voice) Phase(k int) float32 {
	return v.bank.Phase(k)
}

// Render overwrites out with one buffer of audio
func (v *Voice) Render(out []float32, sampleRate int, running time.Duration) {
	v.process(out, sampleRate, running, false)
}

// Mix adds one buffer of audio into out
func (v *Voice) Mix(out []float32, sampleRate int, running time.Duration) {
	v.process(out, sampleRate, running, true)
}

func (v *Voice) process(out []float32, sampleRate int, running time.Duration, mix bool) {
	if len(out) == 0 {
		panic("audio: render into empty buffer")
	}
	if sampleRate <= 0 {
		panic("audio: non-positive sample rate")
	}

	v.running = running
	v.sync()

	c := &v.compiled
	p := &v.params

	noteFreq := float32(v.note.Freq()) * c.tuneRatio
	startFreq := c.toneStart * c.tuneRatio
	dt := 1 / float32(sampleRate)

	fundVol := p[ParamFundamentalVol]
	otVol := p[ParamOvertoneVol]
	factor := p[ParamOvertoneFreqFactor]
	noiseVol := p[ParamNoiseVol]
	octaves := p[ParamNoiseOctaves]
	volume := p[ParamVolume]

	for i := range out {
		freq := c.tone.At(v.seconds, startFreq, noteFreq)

		var fundamental float32
		if fundVol != 0 {
			fundamental = v.bank.Sample(0, dt, freq, 1) * fundVol
		}

		var otones float32
		if otVol != 0 {
			for k, vol := range c.overtoneVols {
				// Silent partials hold their phase
				if vol != 0 {
					otones += v.bank.Sample(k+1, dt, freq, dsp.Multiplier(k+1, factor)) * vol
				}
			}
		}

		s := (fundamental + otones) * c.amp.At(v.seconds, 1, 0)

		if noiseVol != 0 {
			s += v.pink.Next(octaves) * c.noise.At(v.seconds, 1, 0) * noiseVol
		}

		if carry, fired := v.retrig.Step(dt); fired {
			v.seconds = carry
			v.released = false
		}

		s *= volume
		if mix {
			out[i] += s
		} else {
			out[i] = s
		}

		v.seconds += dt
	}

	v.bank.Wrap()
}
