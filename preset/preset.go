// Package preset stores kick voice settings as TOML files
package preset

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/kick/audio"
	"github.com/lixenwraith/kick/constant"
)

var ErrVoiceIndex = errors.New("voice index out of range")

// Voice is one [[voice]] table
type Voice struct {
	Note      string             `toml:"note"`
	Retrigger *int               `toml:"retrigger,omitempty"`
	Params    map[string]float32 `toml:"params"`
}

// Preset is a complete kick setup
type Preset struct {
	Voices     int     `toml:"voices"`
	SampleRate int     `toml:"sample_rate,omitempty"`
	Voice      []Voice `toml:"voice"`
}

// Load reads a preset file
func Load(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open preset %s", path)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "preset %s", path)
	}
	return p, nil
}

// Decode parses a preset and rejects unknown keys
func Decode(r io.Reader) (*Preset, error) {
	p := &Preset{Voices: constant.DefaultActiveVoices}
	md, err := toml.NewDecoder(r).Decode(p)
	if err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown key %q", undecoded[0].String())
	}
	if len(p.Voice) > constant.MaxVoices {
		return nil, errors.Wrapf(ErrVoiceIndex, "%d voice tables", len(p.Voice))
	}
	return p, nil
}

// Apply writes the preset onto k. Parameters are applied before notes so
// a triggered voice starts with its final settings.
func (p *Preset) Apply(k *audio.Kick) error {
	k.SetActiveVoices(p.Voices)

	for i, pv := range p.Voice {
		if i >= constant.MaxVoices {
			return errors.Wrapf(ErrVoiceIndex, "voice %d", i)
		}
		v := k.Voice(i)
		for name, value := range pv.Params {
			if err := v.SetParamByName(name, value); err != nil {
				return errors.Wrapf(err, "voice %d", i)
			}
		}
		if pv.Retrigger != nil {
			v.SetParam(audio.ParamRetrigger, float32(*pv.Retrigger))
		}

		n, err := audio.ParseNote(pv.Note)
		if err != nil {
			return errors.Wrapf(err, "voice %d", i)
		}
		v.SetNote(n)
	}
	return nil
}

// Capture records the active voices of k. Only values that differ from
// the defaults are stored.
func Capture(k *audio.Kick) *Preset {
	p := &Preset{Voices: k.ActiveVoices()}

	for i := 0; i < k.ActiveVoices(); i++ {
		v := k.Voice(i)
		pv := Voice{Params: make(map[string]float32)}
		if n := v.Note(); n.Valid() {
			pv.Note = n.String()
		}
		for pi, spec := range audio.Params() {
			if val := v.Param(audio.Param(pi)); val != spec.Default {
				pv.Params[spec.Name] = val
			}
		}
		p.Voice = append(p.Voice, pv)
	}
	return p
}

// Encode writes the preset as TOML
func (p *Preset) Encode(w io.Writer) error {
	return errors.Wrap(toml.NewEncoder(w).Encode(p), "encode")
}

// Save writes the preset to path
func (p *Preset) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create preset %s", path)
	}
	if err := p.Encode(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "preset %s", path)
	}
	return errors.Wrapf(f.Close(), "close preset %s", path)
}
