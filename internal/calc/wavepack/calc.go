// Package wavepack sizes a perforated-tube duct array for combined airflow
// and electromagnetic shielding: channel count and layout, flow pressure
// drop, waveguide cutoff, shielding-effectiveness curve, and total mass.
package wavepack

import (
	"wavepack/internal/errs"
	"wavepack/internal/props"
	"wavepack/internal/thermal"
	"wavepack/internal/units"
)

// seRequirementDb is the shielding requirement checked at the top of the
// frequency sweep for the report compliance block.
const seRequirementDb = 80.0

type Input struct {
	AIn          float64 `json:"a_in"` // cross-section width, or bore diameter for circular shapes
	BIn          float64 `json:"b_in"` // cross-section height, ignored for circular shapes
	TIn          float64 `json:"t_in"` // wall thickness
	LIn          float64 `json:"L_in"` // channel length
	Shape        Shape   `json:"shape"`
	Material     string  `json:"material"`
	Fluid        string  `json:"fluid"`
	VelTargetFts float64 `json:"vel_target_fts"`
	DpLimitPsi   float64 `json:"dp_limit_psi"`
	TMinF        float64 `json:"T_min_F"`
	TMaxF        float64 `json:"T_max_F"`
}

// TemperaturePoint is the per-sample pressure drop across the operating
// temperature range, at the target velocity.
type TemperaturePoint struct {
	TK        float64 `json:"t_k"`
	DeltaPPsi float64 `json:"deltaP_psi"`
}

type Compliance struct {
	DpWithinLimit bool `json:"dp_within_limit"`
	SeMeets80Db   bool `json:"se_meets_80_db"`
}

type Result struct {
	ArrayDims      [2]int    `json:"array_dims"`
	VelocityFts    float64   `json:"velocity_fts"`
	DeltaPPsi      float64   `json:"deltaP_psi"`
	FcGHz          float64   `json:"fc_GHz"`
	SEDb           []float64 `json:"SE_db"`
	Freqs          []float64 `json:"freqs"`
	TotalWeightLbm float64   `json:"total_weight_lbm"`
	AIn            float64   `json:"a_in"`
	BIn            float64   `json:"b_in"`
	TIn            float64   `json:"t_in"`
	LFt            float64   `json:"L_ft"`

	Reynolds            float64            `json:"reynolds"`
	FrictionFactor      float64            `json:"friction_factor"`
	Regime              string             `json:"regime"`
	ChannelsNeeded      int                `json:"channels_needed"`
	ChannelsProvisioned int                `json:"channels_provisioned"`
	WidthIn             float64            `json:"width_in"`
	HeightIn            float64            `json:"height_in"`
	OpenAreaRatio       float64            `json:"open_area_ratio"`
	DpByTemperature     []TemperaturePoint `json:"dp_by_temperature"`
	Compliance          Compliance         `json:"compliance"`
	Notes               string             `json:"notes"`
}

// Settings carries the solver tunables that are fixed in the reference
// configuration but adjustable from the config file.
type Settings struct {
	Samples    int // temperature interpolation sample count
	SweepDecLo int // lowest sweep decade, 10^lo Hz
	SweepDecHi int // highest sweep decade, 10^hi Hz
}

func DefaultSettings() Settings {
	return Settings{Samples: thermal.DefaultSamples, SweepDecLo: defaultSweepDecLo, SweepDecHi: defaultSweepDecHi}
}

// Calculate runs one solve against the given property library with the
// reference settings.
func Calculate(lib *props.Library, in Input) (Result, error) {
	return CalculateWith(lib, in, DefaultSettings())
}

// CalculateWith is the orchestrator: unit conversion, property lookup,
// temperature interpolation, sizing, flow, attenuation, and mass synthesis.
// Any failure aborts the whole solve; no partial Result is ever returned.
func CalculateWith(lib *props.Library, in Input, st Settings) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}
	if st.SweepDecHi < st.SweepDecLo {
		return Result{}, errs.Invalid("sweep_decade_hi", st.SweepDecHi, "sweep range is inverted")
	}

	aM := units.InchToMeter(in.AIn)
	bM := units.InchToMeter(in.BIn)
	tM := units.InchToMeter(in.TIn)
	lM := units.InchToMeter(in.LIn)
	if in.Shape.circular() {
		bM = aM
	}
	vMps := in.VelTargetFts * units.FtToM
	dpLimitPa := in.DpLimitPsi * units.PsiToPa

	mat, err := lib.Material(in.Material)
	if err != nil {
		return Result{}, err
	}
	flu, err := lib.Fluid(in.Fluid)
	if err != nil {
		return Result{}, err
	}
	if mat.Rho <= 0 {
		return Result{}, errs.Domain("material", in.Material, "material density must be positive")
	}
	if mat.Roughness < 0 {
		return Result{}, errs.Domain("material", in.Material, "material roughness must not be negative")
	}
	if flu.Rho <= 0 {
		return Result{}, errs.Domain("fluid", in.Fluid, "fluid density must be positive")
	}
	if flu.Mu <= 0 {
		return Result{}, errs.Domain("fluid", in.Fluid, "fluid viscosity must be positive")
	}

	profile, err := thermal.Interpolate(flu, in.TMinF, in.TMaxF, st.Samples)
	if err != nil {
		return Result{}, err
	}
	rho := profile.MeanRho()
	mu := profile.MeanMu()

	dh := in.Shape.hydraulicDiameter(aM, bM)
	openRatio := in.Shape.openAreaRatio()

	needed := requiredChannels(openRatio, dpLimitPa, rho, vMps)
	rows, cols := layout(needed)
	provisioned := rows * cols

	re := Reynolds(rho, vMps, dh, mu)
	f := FrictionFactor(re, mat.Roughness, dh)
	dpPa := PressureDrop(rho, vMps, lM, dh, f)

	freqs := Sweep(st.SweepDecLo, st.SweepDecHi)
	fc := cutoffFrequency(in.Shape, aM, bM, mat.EpsR, mat.MuR)
	se := shieldingEffectiveness(fc, lM, mat.EpsR, mat.MuR, freqs)

	width, height := envelope(in.Shape, rows, cols, aM, bM, tM)
	mass, err := arrayMass(in.Shape, provisioned, width, height, lM, aM, bM, mat.Rho)
	if err != nil {
		return Result{}, err
	}

	regime := "turbulent"
	if re < reynoldsTransition {
		regime = "laminar"
	}

	dpByT := make([]TemperaturePoint, len(profile.Samples))
	for i, s := range profile.Samples {
		reT := Reynolds(s.Rho, vMps, dh, s.Mu)
		fT := FrictionFactor(reT, mat.Roughness, dh)
		dpByT[i] = TemperaturePoint{
			TK:        s.TK,
			DeltaPPsi: PressureDrop(s.Rho, vMps, lM, dh, fT) * units.PaToPsi,
		}
	}

	dpPsi := dpPa * units.PaToPsi
	return Result{
		ArrayDims:      [2]int{rows, cols},
		VelocityFts:    vMps / units.FtToM,
		DeltaPPsi:      dpPsi,
		FcGHz:          fc / 1e9,
		SEDb:           se,
		Freqs:          freqs,
		TotalWeightLbm: mass * units.KgToLbm,
		AIn:            in.AIn,
		BIn:            in.BIn,
		TIn:            in.TIn,
		LFt:            in.LIn / 12,

		Reynolds:            re,
		FrictionFactor:      f,
		Regime:              regime,
		ChannelsNeeded:      needed,
		ChannelsProvisioned: provisioned,
		WidthIn:             units.MeterToInch(width),
		HeightIn:            units.MeterToInch(height),
		OpenAreaRatio:       openRatio,
		DpByTemperature:     dpByT,
		Compliance: Compliance{
			DpWithinLimit: dpPsi <= in.DpLimitPsi,
			SeMeets80Db:   se[len(se)-1] >= seRequirementDb,
		},
		Notes: "Channel count from 10% back-pressure margin heuristic; layout rounded up to a full square grid.",
	}, nil
}

func validate(in Input) error {
	if in.AIn <= 0 {
		return errs.Domain("a_in", in.AIn, "dimension must be positive")
	}
	if !in.Shape.circular() && in.BIn <= 0 {
		return errs.Domain("b_in", in.BIn, "dimension must be positive")
	}
	if in.TIn <= 0 {
		return errs.Domain("t_in", in.TIn, "wall thickness must be positive")
	}
	if in.LIn <= 0 {
		return errs.Domain("L_in", in.LIn, "channel length must be positive")
	}
	if in.VelTargetFts <= 0 {
		return errs.Domain("vel_target_fts", in.VelTargetFts, "target velocity must be positive")
	}
	if in.DpLimitPsi <= 0 {
		return errs.Domain("dp_limit_psi", in.DpLimitPsi, "pressure-drop limit must be positive")
	}
	return nil
}
