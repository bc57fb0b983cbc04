package dsp

import (
	"math"
	"testing"
)

var knobGrid = []float32{0, 0.25, 0.5}

// TestDecayStartsAtStart verifies Decay(0) returns start exactly for every shape
func TestDecayStartsAtStart(t *testing.T) {
	for _, tm := range []float32{0, 0.5, 1} {
		for _, a := range knobGrid {
			for _, b := range knobGrid {
				for _, p := range knobGrid {
					env := CompileEnvelope(tm, a, b, p)
					if got := env.At(0, 1, 0); got != 1 {
						t.Fatalf("amp envelope %+v at 0: got %v, want 1", env, got)
					}
					if got := env.At(0, 1200, 55); got != 1200 {
						t.Fatalf("freq envelope %+v at 0: got %v, want 1200", env, got)
					}
				}
			}
		}
	}
}

// TestDecayReachesEnd verifies the envelope settles at end for large t
func TestDecayReachesEnd(t *testing.T) {
	for _, tm := range []float32{0, 0.5, 1} {
		for _, a := range knobGrid {
			for _, b := range knobGrid {
				for _, p := range knobGrid {
					env := CompileEnvelope(tm, a, b, p)
					got := env.At(100, 1200, 55)
					if math.Abs(float64(got-55)) > 1e-3 {
						t.Fatalf("envelope %+v at 100s: got %v, want 55", env, got)
					}
				}
			}
		}
	}
}

// TestDecayMonotonic verifies an amplitude envelope never rises
func TestDecayMonotonic(t *testing.T) {
	env := CompileEnvelope(0.2, 0.5, 0.3, 0.672)
	prev := float32(1)
	for i := 1; i < 4410; i++ {
		v := env.At(float32(i)/44100, 1, 0)
		if v > prev {
			t.Fatalf("sample %d rose from %v to %v", i, prev, v)
		}
		if v < 0 || v > 1 {
			t.Fatalf("sample %d out of range: %v", i, v)
		}
		prev = v
	}
}

// TestDecayDegenerateBlend verifies a vanishing time constant stays finite
func TestDecayDegenerateBlend(t *testing.T) {
	got := Decay(0.01, 1, 0, 0, 0, 0.001, 1)
	if math.IsNaN(float64(got)) || math.IsInf(float64(got), 0) {
		t.Fatalf("Expected finite output for zero blend, got %v", got)
	}
	if got != 0 {
		t.Errorf("Expected immediate settle to end, got %v", got)
	}

	// Zero decay time must not produce NaN alpha
	got = Decay(0, 1, 0, 0.1, 0.2, 0, 1)
	if got != 1 {
		t.Errorf("Expected start at t=0 with zero decay time, got %v", got)
	}
}

// TestPlerpClampsAlpha verifies interpolation stops at both ends
func TestPlerpClampsAlpha(t *testing.T) {
	if got := Plerp(0.25, 0.75, -1, 1); got != 0.25 {
		t.Errorf("Expected 0.25, got %v", got)
	}
	if got := Plerp(0.25, 0.75, 7, 1); got != 0.75 {
		t.Errorf("Expected 0.75, got %v", got)
	}
	if got := Plerp(0.5, 0.5, 0.3, 2); got != 0.25 {
		t.Errorf("Expected 0.25, got %v", got)
	}
}
