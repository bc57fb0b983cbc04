package audio

import (
	"fmt"
	"math"

	"github.com/lixenwraith/kick/dsp"
)

// Param indexes a voice control
type Param int

const (
	ParamVolume Param = iota
	ParamRetrigger
	ParamRetriggerPeriod
	ParamToneStart
	ParamToneTime
	ParamToneShapeA
	ParamToneShapeB
	ParamToneShapeExp
	ParamAmpTime
	ParamAmpShapeA
	ParamAmpShapeB
	ParamAmpShapeExp
	ParamTune
	ParamNoiseVol
	ParamNoiseOctaves
	ParamNoiseTime
	ParamNoiseShapeA
	ParamNoiseShapeB
	ParamNoiseShapeExp
	ParamFundamentalVol
	ParamOvertoneVol
	ParamOvertoneFreqFactor
	ParamOvertone0
	ParamOvertone1
	ParamOvertone2
	ParamOvertone3
	ParamOvertone4
	ParamOvertone5
	ParamOvertone6
	ParamOvertone7
	ParamOvertone8
	ParamOvertone9
	ParamCount
)

// ParamKind is the value type of a control
type ParamKind int

const (
	KindFloat ParamKind = iota
	KindUint
)

// ParamSpec declares a control's name and domain
type ParamSpec struct {
	Name    string
	Label   string
	Kind    ParamKind
	Min     float32
	Max     float32
	Default float32
}

// Clamp maps v into the domain. NaN takes the default; uint controls round.
func (s ParamSpec) Clamp(v float32) float32 {
	if v != v {
		return s.Default
	}
	if s.Kind == KindUint {
		v = float32(math.Round(float64(v)))
	}
	return dsp.Clamp(v, s.Min, s.Max)
}

var paramSpecs = [ParamCount]ParamSpec{
	ParamVolume:             {"volume", "Volume", KindFloat, 0, 5, 1},
	ParamRetrigger:          {"retrigger", "Retrigger", KindUint, 0, 20, 0},
	ParamRetriggerPeriod:    {"retrigger-period", "Retrg Period", KindFloat, 0, 1, 0},
	ParamToneStart:          {"tone-start", "Tone Start", KindFloat, 0, 1, 0.55},
	ParamToneTime:           {"tone-time", "Tone Time", KindFloat, 0, 1, 0},
	ParamToneShapeA:         {"tone-shape-a", "Tone A", KindFloat, 0, 1, 0.5},
	ParamToneShapeB:         {"tone-shape-b", "Tone B", KindFloat, 0, 1, 0.5},
	ParamToneShapeExp:       {"tone-shape-exp", "Tone Exp", KindFloat, 0, 1, 0.672},
	ParamAmpTime:            {"amp-time", "Amp Time", KindFloat, 0, 1, 0},
	ParamAmpShapeA:          {"amp-shape-a", "Amp A", KindFloat, 0, 1, 0.5},
	ParamAmpShapeB:          {"amp-shape-b", "Amp B", KindFloat, 0, 1, 0.5},
	ParamAmpShapeExp:        {"amp-shape-exp", "Amp Exp", KindFloat, 0, 1, 0.672},
	ParamTune:               {"tune", "Tune", KindFloat, -24, 24, 0},
	ParamNoiseVol:           {"noise-vol", "Noise Vol", KindFloat, 0, 4, 0.5},
	ParamNoiseOctaves:       {"noise-octaves", "Noise Oct.", KindFloat, dsp.MinNoiseOctaves, dsp.MaxNoiseOctaves, 4},
	ParamNoiseTime:          {"noise-time", "Noise Time", KindFloat, 0, 1, 0},
	ParamNoiseShapeA:        {"noise-shape-a", "Noise A", KindFloat, 0, 1, 0},
	ParamNoiseShapeB:        {"noise-shape-b", "Noise B", KindFloat, 0, 1, 0.5},
	ParamNoiseShapeExp:      {"noise-shape-exp", "Noise Exp", KindFloat, 0, 1, 0.672},
	ParamFundamentalVol:     {"fundamental-vol", "Fund. Vol", KindFloat, 0, 1, 1},
	ParamOvertoneVol:        {"overtone-vol", "Otone. Vol", KindFloat, 0, 1, 0},
	ParamOvertoneFreqFactor: {"overtone-freq-factor", "Otone. FF", KindFloat, 0, 10, 2},
	ParamOvertone0:          {"overtone0", "Otone 0", KindFloat, -1, 1, 0},
	ParamOvertone1:          {"overtone1", "Otone 1", KindFloat, -1, 1, 0},
	ParamOvertone2:          {"overtone2", "Otone 2", KindFloat, -1, 1, 0},
	ParamOvertone3:          {"overtone3", "Otone 3", KindFloat, -1, 1, 0},
	ParamOvertone4:          {"overtone4", "Otone 4", KindFloat, -1, 1, 0},
	ParamOvertone5:          {"overtone5", "Otone 5", KindFloat, -1, 1, 0},
	ParamOvertone6:          {"overtone6", "Otone 6", KindFloat, -1, 1, 0},
	ParamOvertone7:          {"overtone7", "Otone 7", KindFloat, -1, 1, 0},
	ParamOvertone8:          {"overtone8", "Otone 8", KindFloat, -1, 1, 0},
	ParamOvertone9:          {"overtone9", "Otone 9", KindFloat, -1, 1, 0},
}

var paramsByName = func() map[string]Param {
	m := make(map[string]Param, ParamCount)
	for p, s := range paramSpecs {
		m[s.Name] = Param(p)
	}
	return m
}()

// Spec returns the declaration of p
func (p Param) Spec() ParamSpec {
	return paramSpecs[p]
}

// Valid reports whether p indexes a control
func (p Param) Valid() bool {
	return p >= 0 && p < ParamCount
}

func (p Param) String() string {
	if !p.Valid() {
		return fmt.Sprintf("param(%d)", int(p))
	}
	return paramSpecs[p].Name
}

// LookupParam resolves a control by its name
func LookupParam(name string) (Param, error) {
	p, ok := paramsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownParam, name)
	}
	return p, nil
}

// Params returns every control declaration in index order
func Params() []ParamSpec {
	out := make([]ParamSpec, ParamCount)
	copy(out, paramSpecs[:])
	return out
}

// OvertoneParam returns the control for overtone k (0-based)
func OvertoneParam(k int) Param {
	return ParamOvertone0 + Param(k)
}
