package audio

import (
	"testing"
	"time"
)

// TestDefaultAudioConfig verifies default configuration
func TestDefaultAudioConfig(t *testing.T) {
	cfg := DefaultAudioConfig()

	if !cfg.Enabled {
		t.Error("Expected default config to have Enabled=true")
	}
	if cfg.MasterVolume != 1.0 {
		t.Errorf("Expected default master volume 1.0, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", cfg.SampleRate)
	}
	if cfg.BufferDuration != 50*time.Millisecond {
		t.Errorf("Expected default buffer 50ms, got %v", cfg.BufferDuration)
	}
	if cfg.Output != OutputSpeaker {
		t.Errorf("Expected speaker output, got %q", cfg.Output)
	}
}

// TestLoadAudioConfigEnv verifies each environment override
func TestLoadAudioConfigEnv(t *testing.T) {
	t.Setenv("KICK_AUDIO_ENABLED", "false")
	t.Setenv("KICK_MASTER_VOLUME", "75")
	t.Setenv("KICK_SAMPLE_RATE", "48000")
	t.Setenv("KICK_BUFFER_MS", "20")
	t.Setenv("KICK_BACKEND", "pipe")

	cfg := LoadAudioConfig()

	if cfg.Enabled {
		t.Error("Expected Enabled=false")
	}
	if cfg.MasterVolume != 0.75 {
		t.Errorf("Expected MasterVolume=0.75, got %f", cfg.MasterVolume)
	}
	if cfg.SampleRate != 48000 {
		t.Errorf("Expected SampleRate=48000, got %d", cfg.SampleRate)
	}
	if cfg.BufferDuration != 20*time.Millisecond {
		t.Errorf("Expected BufferDuration=20ms, got %v", cfg.BufferDuration)
	}
	if cfg.Output != OutputPipe {
		t.Errorf("Expected Output=pipe, got %q", cfg.Output)
	}
}

// TestLoadAudioConfigMasterVolume verifies clamping of master volume
func TestLoadAudioConfigMasterVolume(t *testing.T) {
	testCases := []struct {
		value    string
		expected float64
	}{
		{"0", 0.0},
		{"50", 0.5},
		{"100", 1.0},
		{"150", 1.0},
		{"-10", 0.0},
		{"loud", 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			t.Setenv("KICK_MASTER_VOLUME", tc.value)
			cfg := LoadAudioConfig()
			if cfg.MasterVolume != tc.expected {
				t.Errorf("Expected MasterVolume=%f for value %s, got %f", tc.expected, tc.value, cfg.MasterVolume)
			}
		})
	}
}

// TestLoadAudioConfigInvalid verifies bad values keep defaults
func TestLoadAudioConfigInvalid(t *testing.T) {
	t.Setenv("KICK_AUDIO_ENABLED", "maybe")
	t.Setenv("KICK_SAMPLE_RATE", "-1")
	t.Setenv("KICK_BUFFER_MS", "x")
	t.Setenv("KICK_BACKEND", "jack")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()

	if cfg.Enabled != def.Enabled {
		t.Errorf("Expected Enabled=%v, got %v", def.Enabled, cfg.Enabled)
	}
	if cfg.SampleRate != def.SampleRate {
		t.Errorf("Expected SampleRate=%d, got %d", def.SampleRate, cfg.SampleRate)
	}
	if cfg.BufferDuration != def.BufferDuration {
		t.Errorf("Expected BufferDuration=%v, got %v", def.BufferDuration, cfg.BufferDuration)
	}
	if cfg.Output != def.Output {
		t.Errorf("Expected Output=%q, got %q", def.Output, cfg.Output)
	}
}
