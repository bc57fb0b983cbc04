// Package viewer is an interactive terminal editor for kick voices: the
// envelope preview drawn in half-blocks next to the parameter list.
package viewer

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/kick/audio"
	"github.com/lixenwraith/kick/constant"
)

const (
	frameInterval = 33 * time.Millisecond
	listX         = constant.PreviewWidth + 2
	labelWidth    = 14
)

// snapshot is the state copied out of the stream lock for one frame
type snapshot struct {
	preview audio.Preview
	values  [audio.ParamCount]float32
	note    audio.Note
	active  int
}

// View draws and edits one voice of a Stream
type View struct {
	screen tcell.Screen
	stream *audio.Stream
	note   audio.Note

	voice    int
	selected audio.Param

	dirty atomic.Bool
}

// New creates a view editing voice 0 of s; space plays note
func New(screen tcell.Screen, s *audio.Stream, note audio.Note) *View {
	v := &View{
		screen: screen,
		stream: s,
		note:   note,
	}
	v.dirty.Store(true)
	s.Update(func(k *audio.Kick) {
		k.OnChange(func() { v.dirty.Store(true) })
	})
	return v
}

// Run polls input and redraws until quit
func (v *View) Run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	v.Draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !v.HandleEvent(ev) {
				return
			}

		case <-ticker.C:
			if v.dirty.CompareAndSwap(true, false) {
				v.Draw()
			}
		}
	}
}

// Selected returns the highlighted parameter
func (v *View) Selected() audio.Param {
	return v.selected
}

// VoiceIndex returns the voice being edited
func (v *View) VoiceIndex() int {
	return v.voice
}

func (v *View) capture() snapshot {
	var snap snapshot
	v.stream.Update(func(k *audio.Kick) {
		voice := k.Voice(v.voice)
		snap.preview = *voice.Preview()
		for p := audio.Param(0); p < audio.ParamCount; p++ {
			snap.values[p] = voice.Param(p)
		}
		snap.note = voice.Note()
		snap.active = k.ActiveVoices()
	})
	return snap
}

// Draw renders one frame
func (v *View) Draw() {
	snap := v.capture()

	v.screen.Clear()
	v.drawPreview(&snap.preview)
	v.drawParams(&snap)
	v.screen.Show()
}

// drawPreview packs two pixel rows per cell with an upper half-block
func (v *View) drawPreview(p *audio.Preview) {
	for y := 0; y < constant.PreviewHeight; y += 2 {
		for x := 0; x < constant.PreviewWidth; x++ {
			top := toTcell(blendARGB(p.At(x, y), background))
			bottom := toTcell(blendARGB(p.At(x, y+1), background))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			v.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
}

func (v *View) drawParams(snap *snapshot) {
	header := fmt.Sprintf("voice %d/%d  note %v", v.voice+1, snap.active, snap.note)
	drawText(v.screen, listX, 0, tcell.StyleDefault.Bold(true), header)

	for i, spec := range audio.Params() {
		p := audio.Param(i)
		line := fmt.Sprintf("%-*s %s", labelWidth, spec.Label, formatValue(spec, snap.values[p]))
		style := tcell.StyleDefault
		if p == v.selected {
			style = style.Reverse(true)
		}
		drawText(v.screen, listX, i+2, style, line)
	}

	help := "↑↓ select  ←→ adjust (shift ×10)  [ ] voice  space play  r reset  q quit"
	drawText(v.screen, 0, constant.PreviewHeight/2+1, tcell.StyleDefault.Dim(true), help)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

func formatValue(spec audio.ParamSpec, value float32) string {
	if spec.Kind == audio.KindUint {
		return fmt.Sprintf("%8d", int(value))
	}
	return fmt.Sprintf("%8.3f", value)
}
