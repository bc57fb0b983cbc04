package audio

import (
	"os"
	"os/exec"
	"runtime"
	"strconv"
)

// Swapped in tests
var (
	lookPath = exec.LookPath
	statFile = os.Stat
	goos     = runtime.GOOS
)

// DetectBackend searches for available audio backends streaming s16le stereo at sampleRate
// Priority: pacat > pw-cat > aplay > play (sox) > ffplay > OSS
func DetectBackend(sampleRate int) (*BackendConfig, error) {
	rate := strconv.Itoa(sampleRate)

	// PulseAudio/PipeWire (works on Linux and FreeBSD with pulse installed)
	if path, err := lookPath("pacat"); err == nil {
		return &BackendConfig{
			Type: BackendPulse,
			Name: "pacat",
			Path: path,
			Args: []string{
				"--raw",
				"--format=s16le",
				"--rate=" + rate,
				"--channels=2",
				"--latency-msec=50",
				"--playback",
			},
		}, nil
	}

	// PipeWire native
	if path, err := lookPath("pw-cat"); err == nil {
		return &BackendConfig{
			Type: BackendPipeWire,
			Name: "pw-cat",
			Path: path,
			Args: []string{
				"--playback",
				"--format=s16",
				"--rate=" + rate,
				"--channels=2",
				"--latency=50ms",
				"-",
			},
		}, nil
	}

	// ALSA (Linux)
	if path, err := lookPath("aplay"); err == nil {
		return &BackendConfig{
			Type: BackendALSA,
			Name: "aplay",
			Path: path,
			Args: []string{"-t", "raw", "-f", "S16_LE", "-r", rate, "-c", "2", "-q"},
		}, nil
	}

	// SoX
	if path, err := lookPath("play"); err == nil {
		return &BackendConfig{
			Type: BackendSoX,
			Name: "sox",
			Path: path,
			Args: []string{"-t", "raw", "-e", "signed", "-b", "16", "-c", "2", "-r", rate, "-", "-d", "-q"},
		}, nil
	}

	// FFplay (heavyweight fallback)
	if path, err := lookPath("ffplay"); err == nil {
		return &BackendConfig{
			Type: BackendFFplay,
			Name: "ffplay",
			Path: path,
			Args: []string{
				"-nodisp",
				"-autoexit",
				"-f", "s16le",
				"-ac", "2",
				"-ar", rate,
				"-probesize", "32",
				"-analyzeduration", "0",
				"-i", "pipe:0",
				"-loglevel", "quiet",
			},
		}, nil
	}

	// FreeBSD OSS (direct device write)
	if goos == "freebsd" {
		if _, err := statFile("/dev/dsp"); err == nil {
			return &BackendConfig{
				Type: BackendOSS,
				Name: "oss",
				Path: "/dev/dsp",
			}, nil
		}
	}

	return nil, ErrNoAudioBackend
}

func (b BackendType) String() string {
	switch b {
	case BackendPulse:
		return "pulse"
	case BackendPipeWire:
		return "pipewire"
	case BackendALSA:
		return "alsa"
	case BackendSoX:
		return "sox"
	case BackendFFplay:
		return "ffplay"
	case BackendOSS:
		return "oss"
	}
	return "unknown"
}
