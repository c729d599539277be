// Package units holds the conversion constants used to move between the
// imperial wire units and the SI units the solver works in.
package units

const (
	InToM    = 0.0254
	FtToM    = 0.3048
	PsiToPa  = 6894.76
	PaToPsi  = 1 / PsiToPa
	KgToLbm  = 2.20462
	LbmToKg  = 0.453592
	CLight   = 2.998e8 // speed of light, m/s
	TRefK    = 273.15  // reference temperature for property scaling, K
	RhoAirSL = 1.225   // standard air density at sea level, kg/m3
)

// FahrenheitToKelvin converts a temperature to the absolute scale.
func FahrenheitToKelvin(f float64) float64 {
	return (f + 459.67) * 5.0 / 9.0
}

// InchToMeter converts a length given in inches.
func InchToMeter(in float64) float64 { return in * InToM }

// MeterToInch converts a length back to inches for reporting.
func MeterToInch(m float64) float64 { return m / InToM }
