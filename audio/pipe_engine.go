package audio

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
)

// PipeEngine streams a Stream into a system audio tool over a pipe.
// Used where the speaker device cannot open.
type PipeEngine struct {
	config *AudioConfig
	stream *Stream

	backend *BackendConfig
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	ossFile *os.File // For direct OSS writes
	writer  *pipeWriter

	running    atomic.Bool
	silentMode atomic.Bool

	wg sync.WaitGroup
}

// NewPipeEngine creates an engine for s
func NewPipeEngine(s *Stream, cfg *AudioConfig) *PipeEngine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &PipeEngine{
		config: cfg,
		stream: s,
	}
}

// Start launches the audio backend and writer
func (pe *PipeEngine) Start() error {
	if pe.running.Load() {
		return fmt.Errorf("pipe engine already running")
	}

	backend, err := DetectBackend(pe.config.SampleRate)
	if err != nil {
		pe.silentMode.Store(true)
		pe.running.Store(true)
		return nil // Silent mode, not an error
	}

	pe.backend = backend

	var writer io.Writer
	if backend.Type == BackendOSS {
		// Direct file write for OSS
		f, err := os.OpenFile(backend.Path, os.O_WRONLY, 0)
		if err != nil {
			pe.silentMode.Store(true)
			pe.running.Store(true)
			return nil
		}
		pe.ossFile = f
		writer = f
	} else {
		// Exec-based backend
		cmd := exec.Command(backend.Path, backend.Args...)
		stdin, err := cmd.StdinPipe()
		if err != nil {
			pe.silentMode.Store(true)
			pe.running.Store(true)
			return nil
		}

		if err := cmd.Start(); err != nil {
			stdin.Close()
			pe.silentMode.Store(true)
			pe.running.Store(true)
			return nil
		}

		pe.cmd = cmd
		pe.stdin = stdin
		writer = stdin

		// Monitor process
		pe.wg.Add(1)
		go pe.monitorProcess()
	}

	pe.writer = newPipeWriter(writer, newVolume(pe.stream, pe.config.MasterVolume), pe.config.SampleRate, pe.config.BufferDuration)
	pe.writer.Start()

	// Monitor pipe errors
	pe.wg.Add(1)
	go pe.monitorWriter()

	pe.running.Store(true)
	return nil
}

// monitorProcess watches for subprocess exit
func (pe *PipeEngine) monitorProcess() {
	defer pe.wg.Done()

	if pe.cmd == nil {
		return
	}

	err := pe.cmd.Wait()
	if err != nil && pe.running.Load() && !pe.silentMode.Load() {
		pe.silentMode.Store(true)
	}
}

// monitorWriter watches for pipe errors
func (pe *PipeEngine) monitorWriter() {
	defer pe.wg.Done()

	if pe.writer == nil {
		return
	}

	select {
	case <-pe.writer.Errors():
		pe.silentMode.Store(true)
	case <-pe.writer.stopChan:
	}
}

// Stop terminates the engine
func (pe *PipeEngine) Stop() {
	if !pe.running.CompareAndSwap(true, false) {
		return
	}

	if pe.writer != nil {
		pe.writer.Stop()
	}

	if pe.stdin != nil {
		pe.stdin.Close()
	}

	if pe.ossFile != nil {
		pe.ossFile.Close()
	}

	if pe.cmd != nil && pe.cmd.Process != nil {
		pe.cmd.Process.Kill()
	}

	pe.wg.Wait()
}

// Trigger plays note on voice i
func (pe *PipeEngine) Trigger(i int, n Note) {
	pe.stream.Trigger(i, n)
}

// IsRunning returns true if engine is running (even in silent mode)
func (pe *PipeEngine) IsRunning() bool {
	return pe.running.Load()
}

// IsSilent returns true when no backend could be reached
func (pe *PipeEngine) IsSilent() bool {
	return pe.silentMode.Load()
}

// Backend returns the detected backend, nil in silent mode
func (pe *PipeEngine) Backend() *BackendConfig {
	return pe.backend
}

// Written returns frames delivered to the backend
func (pe *PipeEngine) Written() uint64 {
	if pe.writer == nil {
		return 0
	}
	return pe.writer.Written()
}
