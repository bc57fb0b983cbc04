package audio

import (
	"errors"
	"math"
	"testing"
)

// TestNoteFreq verifies the equal-temperament table
func TestNoteFreq(t *testing.T) {
	tests := []struct {
		note Note
		want float64
	}{
		{NoteA4, 440},
		{Note(57), 220},
		{Note(81), 880},
		{Note(60), 261.6256},
		{NoteOff, 0},
		{NoteNone, 0},
	}
	for _, tt := range tests {
		if got := tt.note.Freq(); math.Abs(got-tt.want) > 1e-3 {
			t.Errorf("%v: got %v Hz, want %v", tt.note, got, tt.want)
		}
	}
}

// TestNoteString verifies tracker-style formatting
func TestNoteString(t *testing.T) {
	tests := []struct {
		note Note
		want string
	}{
		{NoteA4, "A-4"},
		{Note(61), "C#4"},
		{Note(0), "C--1"},
		{Note(127), "G-9"},
		{NoteOff, "off"},
		{NoteNone, "none"},
		{Note(200), "note(200)"},
	}
	for _, tt := range tests {
		if got := tt.note.String(); got != tt.want {
			t.Errorf("Note(%d).String() = %q, want %q", uint8(tt.note), got, tt.want)
		}
	}
}

// TestParseNote verifies accepted spellings and round trips
func TestParseNote(t *testing.T) {
	tests := []struct {
		in   string
		want Note
	}{
		{"A-4", NoteA4},
		{"A4", NoteA4},
		{"a4", NoteA4},
		{"69", NoteA4},
		{"C#3", Note(49)},
		{"Db3", Note(49)},
		{"C--1", Note(0)},
		{"off", NoteOff},
		{"OFF", NoteOff},
		{"", NoteNone},
		{"none", NoteNone},
	}
	for _, tt := range tests {
		got, err := ParseNote(tt.in)
		if err != nil {
			t.Errorf("ParseNote(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNote(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for n := Note(0); n < 128; n++ {
		got, err := ParseNote(n.String())
		if err != nil || got != n {
			t.Errorf("round trip %d: got %v, %v", n, got, err)
		}
	}
}

// TestParseNoteErrors verifies rejected input wraps ErrBadNote
func TestParseNoteErrors(t *testing.T) {
	for _, in := range []string{"H4", "A", "A#x", "128", "-1", "G#9", "kick"} {
		if _, err := ParseNote(in); !errors.Is(err, ErrBadNote) {
			t.Errorf("ParseNote(%q): expected ErrBadNote, got %v", in, err)
		}
	}
}
