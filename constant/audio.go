package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 4 bytes
)

// Audio Engine Timing
const (
	// AudioBufferDuration determines latency and pipe writer tick rate
	AudioBufferDuration = 50 * time.Millisecond

	// AudioRenderChunk bounds the scratch buffer used when streaming
	AudioRenderChunk = 4096
)

// Kick Topology
const (
	// MaxVoices is the fixed voice capacity of a kick
	MaxVoices = 16

	// DefaultActiveVoices is the active count of a freshly constructed kick
	DefaultActiveVoices = 1

	// Overtones excludes the fundamental
	Overtones = 10
	Partials  = Overtones + 1

	// PinkNoiseLayers covers every index a uint16 trailing-zero counter can select
	PinkNoiseLayers = 18
)

// Voice Runtime
const (
	// VoiceIdleSeconds places a fresh voice far past the end of every envelope
	VoiceIdleSeconds = 3600.0
)

// Preview Graphic
const (
	PreviewWidth  = 64
	PreviewHeight = 64

	// PreviewWindow is the span of envelope time drawn across the width
	PreviewWindow = 0.5 // seconds

	PreviewFreqMin = 10.0    // Hz
	PreviewFreqMax = 22050.0 // Hz

	PreviewAmpColor  = 0x80000000
	PreviewFreqColor = 0xFF00FFFF
)
