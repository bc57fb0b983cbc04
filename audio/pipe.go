package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/kick/constant"
)

// pipeWriter paces a streamer into a raw s16le stereo sink
type pipeWriter struct {
	output   io.Writer
	source   beep.Streamer
	interval time.Duration
	frames   int

	stopChan chan struct{}
	stopped  atomic.Bool

	// Stats
	statsMu sync.Mutex
	written uint64

	// Error signaling
	errChan chan error
}

// newPipeWriter creates a writer emitting frames per interval from source
func newPipeWriter(out io.Writer, source beep.Streamer, rate int, interval time.Duration) *pipeWriter {
	return &pipeWriter{
		output:   out,
		source:   source,
		interval: interval,
		frames:   beep.SampleRate(rate).N(interval),
		stopChan: make(chan struct{}),
		errChan:  make(chan error, 1),
	}
}

// Start begins the write loop
func (w *pipeWriter) Start() {
	go w.loop()
}

// Stop signals the loop to halt
func (w *pipeWriter) Stop() {
	if w.stopped.CompareAndSwap(false, true) {
		close(w.stopChan)
	}
}

// Errors returns channel for pipe errors
func (w *pipeWriter) Errors() <-chan error {
	return w.errChan
}

func (w *pipeWriter) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	frames := make([][2]float64, w.frames)
	outBytes := make([]byte, w.frames*constant.AudioBytesPerFrame)

	for {
		select {
		case <-w.stopChan:
			return

		case <-ticker.C:
			n, _ := w.source.Stream(frames)
			for i := n; i < len(frames); i++ {
				frames[i] = [2]float64{}
			}
			framesToBytes(frames, outBytes)

			if _, err := w.output.Write(outBytes); err != nil {
				select {
				case w.errChan <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}

			w.statsMu.Lock()
			w.written += uint64(len(frames))
			w.statsMu.Unlock()
		}
	}
}

// Written returns the number of frames delivered
func (w *pipeWriter) Written() uint64 {
	w.statsMu.Lock()
	defer w.statsMu.Unlock()
	return w.written
}

// WriteRaw renders frames of source as s16le stereo into out without pacing
func WriteRaw(out io.Writer, source beep.Streamer, frames int) error {
	chunk := make([][2]float64, constant.AudioRenderChunk)
	buf := make([]byte, len(chunk)*constant.AudioBytesPerFrame)

	for frames > 0 {
		n := len(chunk)
		if frames < n {
			n = frames
		}
		got, ok := source.Stream(chunk[:n])
		if got > 0 {
			framesToBytes(chunk[:got], buf)
			if _, err := out.Write(buf[:got*constant.AudioBytesPerFrame]); err != nil {
				return fmt.Errorf("%w: %v", ErrPipeClosed, err)
			}
		}
		if !ok {
			return source.Err()
		}
		frames -= got
	}
	return nil
}

// framesToBytes converts stereo float frames to interleaved int16 LE bytes
// Applies soft limiting before hard clip
func framesToBytes(in [][2]float64, out []byte) {
	for i, f := range in {
		idx := i * constant.AudioBytesPerFrame
		binary.LittleEndian.PutUint16(out[idx:], uint16(limit(f[0])))   // L
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(limit(f[1]))) // R
	}
}

func limit(v float64) int16 {
	// Soft limiter (tanh-style)
	if v > 0.8 {
		v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
	} else if v < -0.8 {
		v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
	}

	// Hard clip
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}

	return int16(v * 32767)
}
