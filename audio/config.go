package audio

import (
	"os"
	"strconv"
	"time"

	"github.com/lixenwraith/kick/constant"
)

// AudioConfig holds output settings
type AudioConfig struct {
	Enabled        bool
	MasterVolume   float64
	SampleRate     int
	BufferDuration time.Duration
	Output         OutputMode
}

// DefaultAudioConfig returns settings for live playback through the speaker
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:        true,
		MasterVolume:   1.0,
		SampleRate:     constant.AudioSampleRate,
		BufferDuration: constant.AudioBufferDuration,
		Output:         OutputSpeaker,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	// Check if audio is enabled
	if enabled := os.Getenv("KICK_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Load master volume (0-100 converted to 0.0-1.0)
	if volume := os.Getenv("KICK_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	// Load sample rate
	if sampleRate := os.Getenv("KICK_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	// Load buffer length in milliseconds
	if bufferMs := os.Getenv("KICK_BUFFER_MS"); bufferMs != "" {
		if val, err := strconv.Atoi(bufferMs); err == nil && val > 0 {
			cfg.BufferDuration = time.Duration(val) * time.Millisecond
		}
	}

	switch OutputMode(os.Getenv("KICK_BACKEND")) {
	case OutputPipe:
		cfg.Output = OutputPipe
	case OutputSpeaker:
		cfg.Output = OutputSpeaker
	}

	return cfg
}
