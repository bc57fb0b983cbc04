package audio

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Note is a MIDI note number or one of the control sentinels
type Note uint8

const (
	NoteA4 Note = 69

	// NoteOff releases the voice; NoteNone leaves it untouched
	NoteOff  Note = 254
	NoteNone Note = 255
)

// NoteFrequencies contains precomputed frequencies for MIDI notes 0-127
// A4 (note 69) = 440Hz, equal temperament
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		NoteFrequencies[i] = 440.0 * math.Pow(2, (float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns frequency in Hz for MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return NoteFrequencies[midi]
}

// Valid reports whether n is a playable MIDI note
func (n Note) Valid() bool {
	return n < 128
}

// Freq returns the note frequency, 0 for sentinels
func (n Note) Freq() float64 {
	return NoteFreq(int(n))
}

var noteNames = [12]string{"C-", "C#", "D-", "D#", "E-", "F-", "F#", "G-", "G#", "A-", "A#", "B-"}

// String formats a note tracker style, e.g. "A-4" or "C#3"
func (n Note) String() string {
	switch n {
	case NoteOff:
		return "off"
	case NoteNone:
		return "none"
	}
	if !n.Valid() {
		return fmt.Sprintf("note(%d)", uint8(n))
	}
	return noteNames[n%12] + strconv.Itoa(int(n)/12-1)
}

var semitones = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// ParseNote accepts "A-4", "A4", "C#3", "Bb2", "off", "none" or a MIDI number
func ParseNote(s string) (Note, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "off":
		return NoteOff, nil
	case "", "none":
		return NoteNone, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 127 {
			return NoteNone, fmt.Errorf("%w: %q out of MIDI range", ErrBadNote, s)
		}
		return Note(n), nil
	}

	semi, ok := semitones[strings.ToUpper(s[:1])[0]]
	if !ok {
		return NoteNone, fmt.Errorf("%w: %q", ErrBadNote, s)
	}
	rest := s[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		semi++
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		semi--
		rest = rest[1:]
	case strings.HasPrefix(rest, "-") && len(rest) > 1:
		// Tracker separator; "C--1" keeps the octave sign
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return NoteNone, fmt.Errorf("%w: %q", ErrBadNote, s)
	}

	midi := (octave+1)*12 + semi
	if midi < 0 || midi > 127 {
		return NoteNone, fmt.Errorf("%w: %q out of MIDI range", ErrBadNote, s)
	}
	return Note(midi), nil
}
