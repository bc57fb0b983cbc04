package audio

import (
	"testing"
)

// TestParamTable verifies every control has a unique name and a default inside its domain
func TestParamTable(t *testing.T) {
	seen := make(map[string]bool)
	for i, s := range Params() {
		p := Param(i)
		if s.Name == "" || s.Label == "" {
			t.Errorf("param %d: missing name or label", i)
		}
		if seen[s.Name] {
			t.Errorf("param %d: duplicate name %q", i, s.Name)
		}
		seen[s.Name] = true

		if s.Min > s.Max {
			t.Errorf("%v: min %v above max %v", p, s.Min, s.Max)
		}
		if s.Default < s.Min || s.Default > s.Max {
			t.Errorf("%v: default %v outside [%v, %v]", p, s.Default, s.Min, s.Max)
		}

		got, err := LookupParam(s.Name)
		if err != nil || got != p {
			t.Errorf("LookupParam(%q) = %v, %v; want %v", s.Name, got, err, p)
		}
	}

	if len(seen) != int(ParamCount) {
		t.Errorf("Expected %d params, got %d", ParamCount, len(seen))
	}
}

// TestParamDefaults spot-checks the documented defaults
func TestParamDefaults(t *testing.T) {
	tests := []struct {
		p    Param
		want float32
	}{
		{ParamVolume, 1},
		{ParamToneStart, 0.55},
		{ParamToneShapeExp, 0.672},
		{ParamNoiseVol, 0.5},
		{ParamNoiseOctaves, 4},
		{ParamNoiseShapeA, 0},
		{ParamFundamentalVol, 1},
		{ParamOvertoneFreqFactor, 2},
		{OvertoneParam(9), 0},
	}
	v := NewVoice()
	for _, tt := range tests {
		if got := v.Param(tt.p); got != tt.want {
			t.Errorf("%v: default %v, want %v", tt.p, got, tt.want)
		}
	}
}

// TestParamInvalidIndex verifies out-of-range indices are ignored
func TestParamInvalidIndex(t *testing.T) {
	v := NewVoice()
	v.SetParam(ParamCount, 1)
	v.SetParam(Param(-1), 1)
	v.Automate(ParamCount, 1)

	if v.Param(ParamCount) != 0 {
		t.Error("Expected 0 for invalid param")
	}
	if got := ParamCount.String(); got != "param(32)" {
		t.Errorf("Expected param(32), got %q", got)
	}
	if OvertoneParam(0) != ParamOvertone0 || OvertoneParam(9) != ParamOvertone9 {
		t.Error("Expected overtone params to be contiguous")
	}
}
