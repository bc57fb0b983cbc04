package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Player drives a Stream through the beep speaker
type Player struct {
	mu          sync.Mutex
	stream      *Stream
	config      *AudioConfig
	ctrl        *beep.Ctrl
	volume      *effects.Volume
	initialized bool
}

// NewPlayer creates a speaker player for s
func NewPlayer(s *Stream, cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Player{
		stream: s,
		config: cfg,
	}
}

// Initialize sets up the audio device and starts streaming
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	rate := p.stream.SampleRate()
	if err := speaker.Init(rate, rate.N(p.config.BufferDuration)); err != nil {
		return err
	}

	p.volume = newVolume(p.stream, p.config.MasterVolume)
	p.ctrl = &beep.Ctrl{Streamer: p.volume, Paused: !p.config.Enabled}
	speaker.Play(p.ctrl)
	p.initialized = true
	return nil
}

// Cleanup stops streaming
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()

	// Note: beep doesn't provide a Close() method for speaker,
	// but clearing all streamers ensures no audio artifacts
	speaker.Clear()
	p.initialized = false
}

// Trigger plays note on voice i
func (p *Player) Trigger(i int, n Note) {
	p.stream.Trigger(i, n)
}

// SetPaused mutes or resumes output without stopping the device
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// SetVolume updates master volume (0.0-1.0)
func (p *Player) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.config.MasterVolume = vol
	if !p.initialized {
		return
	}
	speaker.Lock()
	setVolume(p.volume, vol)
	speaker.Unlock()
}

// IsRunning reports whether the device is streaming
func (p *Player) IsRunning() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}
