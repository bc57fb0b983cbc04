package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/kick/constant"
)

// Stream adapts a Kick to beep.Streamer. Its mutex is the boundary between
// the audio goroutine rendering and control goroutines writing parameters.
type Stream struct {
	mu      sync.Mutex
	kick    *Kick
	rate    beep.SampleRate
	frames  int
	scratch []float32
}

// NewStream wraps k rendering at sampleRate
func NewStream(k *Kick, sampleRate int) *Stream {
	return &Stream{
		kick:    k,
		rate:    beep.SampleRate(sampleRate),
		scratch: make([]float32, constant.AudioRenderChunk),
	}
}

// Stream renders mono audio duplicated to both channels; it never ends
func (s *Stream) Stream(samples [][2]float64) (n int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for off := 0; off < len(samples); {
		buf := s.scratch
		if rest := len(samples) - off; rest < len(buf) {
			buf = buf[:rest]
		}

		s.kick.Render(buf, int(s.rate), s.rate.D(s.frames))

		for i, v := range buf {
			samples[off+i][0] = float64(v)
			samples[off+i][1] = float64(v)
		}
		s.frames += len(buf)
		off += len(buf)
	}
	return len(samples), true
}

// Err implements beep.Streamer
func (s *Stream) Err() error {
	return nil
}

// Update runs fn with exclusive access to the kick
func (s *Stream) Update(fn func(k *Kick)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.kick)
}

// Trigger plays note on voice i
func (s *Stream) Trigger(i int, n Note) {
	s.Update(func(k *Kick) { k.Trigger(i, n) })
}

// SampleRate returns the render rate
func (s *Stream) SampleRate() beep.SampleRate {
	return s.rate
}

// Running returns the stream time rendered so far
func (s *Stream) Running() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rate.D(s.frames)
}
