package thermal

import (
	"math"
	"testing"

	"wavepack/internal/errs"
	"wavepack/internal/props"
)

var air = props.FluidProperties{Rho: 1.225, Mu: 1.81e-5}

func TestInterpolateEndpoints(t *testing.T) {
	p, err := Interpolate(air, 32, 212, 10)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	if len(p.Samples) != 10 {
		t.Fatalf("got %d samples, want 10", len(p.Samples))
	}
	// 32 F is exactly the 273.15 K reference, so the first sample must
	// reproduce the baseline.
	first := p.Samples[0]
	if math.Abs(first.TK-273.15) > 1e-9 {
		t.Errorf("first sample T = %v K, want 273.15", first.TK)
	}
	if math.Abs(first.Rho-air.Rho) > 1e-12 || math.Abs(first.Mu-air.Mu) > 1e-18 {
		t.Errorf("first sample = %+v, want baseline %+v", first, air)
	}
	last := p.Samples[9]
	if math.Abs(last.TK-373.15) > 1e-9 {
		t.Errorf("last sample T = %v K, want 373.15", last.TK)
	}
	// Hotter gas is lighter and more viscous.
	if last.Rho >= first.Rho {
		t.Errorf("density did not fall with temperature: %v -> %v", first.Rho, last.Rho)
	}
	if last.Mu <= first.Mu {
		t.Errorf("viscosity did not rise with temperature: %v -> %v", first.Mu, last.Mu)
	}
}

func TestInterpolateMeans(t *testing.T) {
	p, err := Interpolate(air, 32, 212, 10)
	if err != nil {
		t.Fatalf("Interpolate failed: %v", err)
	}
	// Golden means for the reference air sweep 32-212 F.
	if got := p.MeanRho(); math.Abs(got-1.045737453406631) > 1e-12 {
		t.Errorf("MeanRho = %.15g", got)
	}
	if got := p.MeanMu(); math.Abs(got-2.0564402872716678e-05) > 1e-18 {
		t.Errorf("MeanMu = %.15g", got)
	}
}

func TestInterpolateTooFewSamples(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		if _, err := Interpolate(air, 32, 212, n); errs.KindOf(err) != errs.KindInvalidInput {
			t.Errorf("n=%d: err = %v, want invalid_input", n, err)
		}
	}
}

func TestInterpolateBadRange(t *testing.T) {
	if _, err := Interpolate(air, 212, 32, 10); errs.KindOf(err) != errs.KindInvalidInput {
		t.Error("inverted range should be rejected")
	}
	if _, err := Interpolate(air, -500, 32, 10); errs.KindOf(err) != errs.KindInvalidInput {
		t.Error("sub-absolute-zero range should be rejected")
	}
}
