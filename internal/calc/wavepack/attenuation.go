package wavepack

import (
	"math"

	"wavepack/internal/units"
)

// te11Root is the first root of the Bessel derivative J1', which sets the
// cutoff of the dominant TE11 mode in a circular guide.
const te11Root = 1.8412

// Default sweep bounds: one point per decade, 10^5 through 10^10 Hz.
const (
	defaultSweepDecLo = 5
	defaultSweepDecHi = 10
)

// DefaultSweep returns the reference frequency sweep.
func DefaultSweep() []float64 {
	return Sweep(defaultSweepDecLo, defaultSweepDecHi)
}

// Sweep returns one frequency per decade from 10^lo through 10^hi Hz.
func Sweep(lo, hi int) []float64 {
	freqs := make([]float64, 0, hi-lo+1)
	for d := lo; d <= hi; d++ {
		freqs = append(freqs, math.Pow(10, float64(d)))
	}
	return freqs
}

// cutoffFrequency returns fc in Hz for the dominant mode of the channel.
// Rectangular guides use the TE10-family closed form over both transverse
// dimensions; circular guides use the TE11 mode.
func cutoffFrequency(s Shape, aM, bM, epsR, muR float64) float64 {
	if s.circular() {
		return te11Root * units.CLight / (math.Pi * aM * math.Sqrt(muR*epsR))
	}
	return (units.CLight / 2) * math.Sqrt(1/(aM*aM)+1/(bM*bM)) / math.Sqrt(muR*epsR)
}

// shieldingEffectiveness evaluates SE(f) = 20*log10(exp(alpha*L)) in dB over
// the sweep. At or below cutoff alpha is floored at 1.0 rather than solving
// the exact evanescent decay; above cutoff the propagating-mode attenuation
// constant applies.
func shieldingEffectiveness(fc, lM, epsR, muR float64, freqs []float64) []float64 {
	se := make([]float64, len(freqs))
	for i, f := range freqs {
		alpha := 1.0
		if f > fc {
			alpha = (2 * math.Pi / units.CLight) * math.Sqrt(muR*epsR*(f*f-fc*fc))
		}
		se[i] = 20 * math.Log10(math.Exp(alpha*lM))
	}
	return se
}
