package audio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestFramesToBytes verifies soft limiting and little-endian packing
func TestFramesToBytes(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{0.5, 16383},
		{-0.5, -16383},
		{0.8, 26213},
		{1.0, 29490},
		{-1.0, -29490},
		{100, 32753},
	}

	for _, tt := range tests {
		out := make([]byte, 4)
		framesToBytes([][2]float64{{tt.in, -tt.in}}, out)
		l := int16(binary.LittleEndian.Uint16(out[0:]))
		r := int16(binary.LittleEndian.Uint16(out[2:]))
		if l != tt.want || r != -tt.want {
			t.Errorf("framesToBytes(%v): got L=%d R=%d, want %d/%d", tt.in, l, r, tt.want, -tt.want)
		}
	}
}

// TestWriteRaw verifies frame count and byte length of unpaced export
func TestWriteRaw(t *testing.T) {
	s := NewStream(NewKick(), testRate)
	s.Trigger(0, Note(36))

	var buf bytes.Buffer
	if err := WriteRaw(&buf, s, 5000); err != nil {
		t.Fatalf("WriteRaw: %v", err)
	}
	if buf.Len() != 5000*4 {
		t.Errorf("Expected %d bytes, got %d", 5000*4, buf.Len())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

// TestWriteRawError verifies sink failures wrap ErrPipeClosed
func TestWriteRawError(t *testing.T) {
	s := NewStream(NewKick(), testRate)
	if err := WriteRaw(failWriter{}, s, 10); !errors.Is(err, ErrPipeClosed) {
		t.Errorf("Expected ErrPipeClosed, got %v", err)
	}
}

// TestPipeWriterReportsError verifies a broken sink surfaces on the error channel
func TestPipeWriterReportsError(t *testing.T) {
	w := newPipeWriter(failWriter{}, beep.Silence(-1), testRate, time.Millisecond)
	w.Start()
	defer w.Stop()

	select {
	case err := <-w.Errors():
		if !errors.Is(err, ErrPipeClosed) {
			t.Errorf("Expected ErrPipeClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Expected pipe error within 1s")
	}
}

type syncBuffer struct {
	mu  chan struct{}
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu <- struct{}{}
	defer func() { <-b.mu }()
	return b.buf.Write(p)
}

// TestPipeWriterPaces verifies whole buffers are delivered on each tick
func TestPipeWriterPaces(t *testing.T) {
	sink := &syncBuffer{mu: make(chan struct{}, 1)}
	w := newPipeWriter(sink, beep.Silence(-1), testRate, 5*time.Millisecond)
	w.Start()

	deadline := time.Now().Add(time.Second)
	for w.Written() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	w.Stop()
	w.Stop() // idempotent

	written := w.Written()
	if written == 0 {
		t.Fatal("Expected frames written")
	}
	if written%uint64(w.frames) != 0 {
		t.Errorf("Expected whole buffers, got %d frames of %d", written, w.frames)
	}
}
