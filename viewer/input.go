package viewer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kick/audio"
)

// HandleEvent applies one terminal event, returning false to quit
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)

	case *tcell.EventResize:
		v.screen.Sync()
		v.dirty.Store(true)
	}
	return true
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	coarse := ev.Modifiers()&tcell.ModShift != 0

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.move(-1)
	case tcell.KeyDown:
		v.move(1)
	case tcell.KeyLeft:
		v.adjust(-1, coarse)
	case tcell.KeyRight:
		v.adjust(1, coarse)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k':
			v.move(-1)
		case 'j':
			v.move(1)
		case 'h':
			v.adjust(-1, false)
		case 'l':
			v.adjust(1, false)
		case 'H':
			v.adjust(-1, true)
		case 'L':
			v.adjust(1, true)
		case '[':
			v.switchVoice(-1)
		case ']':
			v.switchVoice(1)
		case ' ':
			v.stream.Trigger(v.voice, v.note)
		case 'r':
			v.stream.Update(func(k *audio.Kick) { k.Reset() })
		}
	}
	return true
}

// move changes the selection, wrapping at both ends
func (v *View) move(dir int) {
	n := int(audio.ParamCount)
	v.selected = audio.Param((int(v.selected) + dir + n) % n)
	v.dirty.Store(true)
}

// switchVoice cycles through the active voices
func (v *View) switchVoice(dir int) {
	v.stream.Update(func(k *audio.Kick) {
		n := k.ActiveVoices()
		if n == 0 {
			return
		}
		v.voice = (v.voice + dir + n) % n
	})
	v.dirty.Store(true)
}

func (v *View) adjust(dir int, coarse bool) {
	p := v.selected
	v.stream.Update(func(k *audio.Kick) {
		voice := k.Voice(v.voice)
		voice.SetParam(p, nudge(p.Spec(), voice.Param(p), dir, coarse))
	})
	v.dirty.Store(true)
}

// nudge steps value by a hundredth of the domain, or a tenth when coarse.
// Integer controls step by one, or by ten when coarse.
func nudge(spec audio.ParamSpec, value float32, dir int, coarse bool) float32 {
	step := (spec.Max - spec.Min) / 100
	if spec.Kind == audio.KindUint {
		step = 1
	}
	if coarse {
		step *= 10
	}
	return spec.Clamp(value + float32(dir)*step)
}
