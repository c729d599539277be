// Package props is the reference property library: fluid and duct-material
// data keyed by name. A Library is built once at startup and never mutated
// afterwards, so it can be shared by concurrent solves without locking.
package props

import "wavepack/internal/errs"

// FluidProperties holds baseline fluid data at roughly 20 C.
type FluidProperties struct {
	Rho float64 // density, kg/m3
	Mu  float64 // dynamic viscosity, Pa*s
}

// MaterialProperties holds duct-wall material data.
type MaterialProperties struct {
	Rho       float64 // density, kg/m3
	EpsR      float64 // relative permittivity
	MuR       float64 // relative permeability
	Roughness float64 // surface roughness, m
}

type Library struct {
	fluids    map[string]FluidProperties
	materials map[string]MaterialProperties
}

// NewLibrary returns a library seeded with the reference dataset plus any
// extra entries. Extras with a name already present override the reference
// value; consumers only ever see the merged table.
func NewLibrary(extraFluids map[string]FluidProperties, extraMaterials map[string]MaterialProperties) *Library {
	lib := &Library{
		fluids: map[string]FluidProperties{
			"Air":      {Rho: 1.225, Mu: 1.81e-5},
			"Water":    {Rho: 998, Mu: 1.00e-3},
			"Diesel":   {Rho: 830, Mu: 3.50e-3},
			"Oil":      {Rho: 870, Mu: 8.00e-3},
			"Gasoline": {Rho: 740, Mu: 6.00e-4},
		},
		materials: map[string]MaterialProperties{
			"Stainless Steel": {Rho: 8000, EpsR: 1.0, MuR: 1.05, Roughness: 1.5e-6},
			"Aluminum":        {Rho: 2700, EpsR: 1.0, MuR: 1.0, Roughness: 1.2e-6},
			"Copper":          {Rho: 8960, EpsR: 1.0, MuR: 0.999, Roughness: 1.0e-6},
			"Brass":           {Rho: 8500, EpsR: 1.0, MuR: 1.0, Roughness: 1.3e-6},
			"Titanium":        {Rho: 4500, EpsR: 1.0, MuR: 1.1, Roughness: 1.7e-6},
		},
	}
	for name, f := range extraFluids {
		lib.fluids[name] = f
	}
	for name, m := range extraMaterials {
		lib.materials[name] = m
	}
	return lib
}

// Default returns the library with only the reference dataset.
func Default() *Library {
	return NewLibrary(nil, nil)
}

// Fluid looks up a fluid by name.
func (l *Library) Fluid(name string) (FluidProperties, error) {
	f, ok := l.fluids[name]
	if !ok {
		return FluidProperties{}, errs.Unknown("fluid", name)
	}
	return f, nil
}

// Material looks up a material by name.
func (l *Library) Material(name string) (MaterialProperties, error) {
	m, ok := l.materials[name]
	if !ok {
		return MaterialProperties{}, errs.Unknown("material", name)
	}
	return m, nil
}

// Fluids lists the available fluid names, for the frontend dropdowns.
func (l *Library) Fluids() []string {
	names := make([]string, 0, len(l.fluids))
	for name := range l.fluids {
		names = append(names, name)
	}
	return names
}

// Materials lists the available material names.
func (l *Library) Materials() []string {
	names := make([]string, 0, len(l.materials))
	for name := range l.materials {
		names = append(names, name)
	}
	return names
}
