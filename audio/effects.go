package audio

import (
	"io"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/wav"
)

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// setVolume retunes an existing volume effect
func setVolume(v *effects.Volume, vol float64) {
	if vol <= 0 {
		v.Silent = true
		return
	}
	v.Silent = false
	v.Volume = math.Log2(vol)
}

// WriteWAV renders d of s as 16-bit stereo WAV, scaled by vol
func WriteWAV(w io.WriteSeeker, s *Stream, d time.Duration, vol float64) error {
	rate := s.SampleRate()
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	return wav.Encode(w, beep.Take(rate.N(d), newVolume(s, vol)), format)
}
