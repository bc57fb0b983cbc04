package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/lixenwraith/kick/constant"
)

// TestStreamFillsBothChannels verifies mono output is duplicated to stereo
func TestStreamFillsBothChannels(t *testing.T) {
	s := NewStream(NewKick(), testRate)
	s.Trigger(0, Note(36))

	// Longer than one render chunk
	samples := make([][2]float64, constant.AudioRenderChunk+100)
	n, ok := s.Stream(samples)

	if !ok || n != len(samples) {
		t.Fatalf("Expected %d samples ok, got %d %v", len(samples), n, ok)
	}
	if s.Err() != nil {
		t.Errorf("Expected no error, got %v", s.Err())
	}

	energy := 0.0
	for i, f := range samples {
		if f[0] != f[1] {
			t.Fatalf("frame %d: channels differ %v", i, f)
		}
		energy += f[0] * f[0]
	}
	if energy == 0 {
		t.Error("Expected non-silent output after trigger")
	}

	want := beep.SampleRate(testRate).D(len(samples))
	if got := s.Running(); got != want {
		t.Errorf("Expected running time %v, got %v", want, got)
	}
}

// TestStreamMatchesKick verifies the stream renders exactly what the kick does
func TestStreamMatchesKick(t *testing.T) {
	direct := NewKick()
	direct.Trigger(0, NoteA4)
	want := make([]float32, 300)
	direct.Render(want, testRate, 0)

	s := NewStream(NewKick(), testRate)
	s.Update(func(k *Kick) { k.Trigger(0, NoteA4) })
	got := make([][2]float64, 300)
	s.Stream(got)

	for i := range want {
		if got[i][0] != float64(want[i]) {
			t.Fatalf("frame %d: got %v, want %v", i, got[i][0], want[i])
		}
	}
}

// TestWriteWAV verifies export length and format
func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kick.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	s := NewStream(NewKick(), testRate)
	s.Trigger(0, Note(36))
	if err := WriteWAV(f, s, 100*time.Millisecond, 1); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}
	f.Close()

	rf, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer rf.Close()

	dec, format, err := wav.Decode(rf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	defer dec.Close()

	if format.SampleRate != testRate || format.NumChannels != 2 || format.Precision != 2 {
		t.Errorf("Unexpected format %+v", format)
	}
	if dec.Len() != testRate/10 {
		t.Errorf("Expected %d frames, got %d", testRate/10, dec.Len())
	}
}
