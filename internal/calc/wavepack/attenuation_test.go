package wavepack

import (
	"math"
	"testing"
)

func TestSweepDecades(t *testing.T) {
	freqs := DefaultSweep()
	if len(freqs) != 6 {
		t.Fatalf("got %d sweep points, want 6", len(freqs))
	}
	if freqs[0] != 1e5 || freqs[5] != 1e10 {
		t.Errorf("sweep endpoints = %v, %v; want 1e5, 1e10", freqs[0], freqs[5])
	}
	for i := 1; i < len(freqs); i++ {
		if math.Abs(freqs[i]/freqs[i-1]-10) > 1e-9 {
			t.Errorf("sweep not decades at index %d: %v -> %v", i, freqs[i-1], freqs[i])
		}
	}
}

func TestDefaultSettingsMatchDefaultSweep(t *testing.T) {
	st := DefaultSettings()
	want := DefaultSweep()
	got := Sweep(st.SweepDecLo, st.SweepDecHi)
	if len(got) != len(want) {
		t.Fatalf("settings sweep has %d points, default sweep %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sweep point %d: %v != %v", i, got[i], want[i])
		}
	}
}

func TestCutoffRectangular(t *testing.T) {
	// 2 x 1 inch stainless channel, golden from the reference scenario.
	a, b := 2*0.0254, 1*0.0254
	fc := cutoffFrequency(Rectangular, a, b, 1.0, 1.05)
	if math.Abs(fc/1e9-6.439146013065995) > 1e-9 {
		t.Errorf("fc = %.12g GHz, want 6.439146013066", fc/1e9)
	}
}

func TestCutoffCircularBelowRectangular(t *testing.T) {
	// For the same transverse size, the TE11 circular cutoff sits below the
	// rectangular cutoff of a square channel of that width.
	d := 0.0254
	circ := cutoffFrequency(CircularInline, d, d, 1.0, 1.0)
	rect := cutoffFrequency(Rectangular, d, d, 1.0, 1.0)
	if circ >= rect {
		t.Errorf("circular fc %v >= rectangular fc %v", circ, rect)
	}
	want := 1.8412 * 2.998e8 / (math.Pi * d)
	if math.Abs(circ-want) > 1e-3 {
		t.Errorf("circular fc = %v, want %v", circ, want)
	}
}

func TestShieldingFloorBelowCutoff(t *testing.T) {
	l := 0.1524
	se := shieldingEffectiveness(6.4e9, l, 1.0, 1.05, []float64{1e5, 1e6, 1e9})
	// alpha floored at 1.0 below cutoff, so every point reads the same.
	want := 20 * math.Log10(math.Exp(l))
	for i, v := range se {
		if math.Abs(v-want) > 1e-9 {
			t.Errorf("SE[%d] = %v, want floor %v", i, v, want)
		}
	}
}

func TestShieldingMonotonicInLength(t *testing.T) {
	// Above cutoff, SE must not decrease as the channel gets longer.
	fc := 6.4e9
	prev := -1.0
	for _, l := range []float64{0.05, 0.1, 0.1524, 0.3, 1.0} {
		se := shieldingEffectiveness(fc, l, 1.0, 1.05, []float64{1e10})
		if se[0] < prev {
			t.Errorf("SE at L=%v dropped: %v < %v", l, se[0], prev)
		}
		prev = se[0]
	}
}

func TestShieldingAboveCutoffGolden(t *testing.T) {
	// Reference scenario: 10^10 Hz point through a 6 inch stainless channel.
	se := shieldingEffectiveness(6.439146013065995e9, 6*0.0254, 1.0, 1.05, []float64{1e10})
	if math.Abs(se[0]-217.49980537880094) > 1e-6 {
		t.Errorf("SE = %.12g dB, want 217.499805379", se[0])
	}
}
