// Package thermal derives a temperature-sampled property profile from a
// baseline fluid property and an operating temperature range.
package thermal

import (
	"math"

	"wavepack/internal/errs"
	"wavepack/internal/props"
	"wavepack/internal/units"
)

// DefaultSamples is the reference sample count across the temperature range.
const DefaultSamples = 10

// Sample is one point of the profile, on the absolute temperature scale.
type Sample struct {
	TK  float64 `json:"t_k"`
	Rho float64 `json:"rho_kg_m3"`
	Mu  float64 `json:"mu_pa_s"`
}

// Profile is an ordered temperature sweep. It is never mutated after
// Interpolate returns it.
type Profile struct {
	Samples []Sample
}

// MeanRho is the arithmetic mean density across the sweep, used downstream
// as the single representative operating point.
func (p Profile) MeanRho() float64 {
	var sum float64
	for _, s := range p.Samples {
		sum += s.Rho
	}
	return sum / float64(len(p.Samples))
}

// MeanMu is the arithmetic mean viscosity across the sweep.
func (p Profile) MeanMu() float64 {
	var sum float64
	for _, s := range p.Samples {
		sum += s.Mu
	}
	return sum / float64(len(p.Samples))
}

// Interpolate generates n equally spaced samples between tMinF and tMaxF.
// Density follows ideal-gas inverse scaling off the 273.15 K reference;
// viscosity follows a Sutherland-shaped correlation with the air constant
// 110 K, applied to every fluid as a deliberate simplification.
func Interpolate(base props.FluidProperties, tMinF, tMaxF float64, n int) (Profile, error) {
	if n < 2 {
		return Profile{}, errs.Invalid("n_points", n, "need at least 2 interpolation samples")
	}
	tMinK := units.FahrenheitToKelvin(tMinF)
	tMaxK := units.FahrenheitToKelvin(tMaxF)
	if tMinK <= 0 || tMaxK <= 0 {
		return Profile{}, errs.Invalid("temperature", tMinF, "temperature below absolute zero")
	}
	if tMaxK < tMinK {
		return Profile{}, errs.Invalid("t_max_f", tMaxF, "max temperature below min")
	}

	step := (tMaxK - tMinK) / float64(n-1)
	samples := make([]Sample, n)
	for i := 0; i < n; i++ {
		t := tMinK + float64(i)*step
		samples[i] = Sample{
			TK:  t,
			Rho: base.Rho * (units.TRefK / t),
			Mu:  base.Mu * math.Pow(t/units.TRefK, 1.5) * (units.TRefK + 110) / (t + 110),
		}
	}
	return Profile{Samples: samples}, nil
}
