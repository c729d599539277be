package wavepack

import "math"

// reynoldsTransition is the laminar/turbulent regime boundary. The turbulent
// branch is inclusive: Re == 2300 uses the Swamee-Jain correlation.
const reynoldsTransition = 2300.0

// Reynolds returns rho*v*Dh/mu.
func Reynolds(rho, v, dh, mu float64) float64 {
	return rho * v * dh / mu
}

// FrictionFactor returns the Darcy friction factor. Laminar flow uses 64/Re;
// turbulent flow uses the explicit Swamee-Jain form of Colebrook-White,
// trading a small accuracy loss for determinism and no convergence failures.
func FrictionFactor(re, roughness, dh float64) float64 {
	if re < reynoldsTransition {
		return 64.0 / re
	}
	return 0.25 / math.Pow(math.Log10(roughness/(3.7*dh)+5.74/math.Pow(re, 0.9)), 2)
}

// PressureDrop returns the Darcy-Weisbach loss f*(L/Dh)*0.5*rho*v^2 in Pa for
// one representative channel; all channels in the array are assumed
// hydraulically identical.
func PressureDrop(rho, v, l, dh, f float64) float64 {
	return f * (l / dh) * 0.5 * rho * v * v
}
