// Package config loads service settings from an ini file. Every key has a
// reference default, so a missing file yields the stock configuration.
package config

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"wavepack/internal/props"
)

type Config struct {
	Addr          string
	StaticDir     string
	RateLimit     float64 // requests per second per client IP
	RateBurst     int
	Samples       int // temperature interpolation points
	SweepDecLo    int // frequency sweep, lowest decade
	SweepDecHi    int // frequency sweep, highest decade
	ExtraFluids   map[string]props.FluidProperties
	ExtraMaterial map[string]props.MaterialProperties
}

func defaults() Config {
	return Config{
		Addr:          ":8080",
		StaticDir:     "./static",
		RateLimit:     1,
		RateBurst:     3,
		Samples:       10,
		SweepDecLo:    5,
		SweepDecHi:    10,
		ExtraFluids:   map[string]props.FluidProperties{},
		ExtraMaterial: map[string]props.MaterialProperties{},
	}
}

// Load reads path, falling back to the defaults when the file is absent.
// Extra property entries live in child sections, e.g.
//
//	[fluid.Helium]
//	rho = 0.1664
//	mu  = 1.96e-5
//
//	[material.Mu-Metal]
//	rho   = 8700
//	eps_r = 1.0
//	mu_r  = 20000
//	rough = 1.0e-6
func Load(path string) Config {
	cfg := defaults()
	file, err := ini.Load(path)
	if err != nil {
		logrus.WithError(err).WithField("path", path).Info("config file not loaded, using defaults")
		return cfg
	}

	server := file.Section("server")
	cfg.Addr = server.Key("addr").MustString(cfg.Addr)
	cfg.StaticDir = server.Key("static_dir").MustString(cfg.StaticDir)
	cfg.RateLimit = server.Key("rate_limit").MustFloat64(cfg.RateLimit)
	cfg.RateBurst = server.Key("rate_burst").MustInt(cfg.RateBurst)

	solver := file.Section("solver")
	cfg.Samples = solver.Key("samples").MustInt(cfg.Samples)
	cfg.SweepDecLo = solver.Key("sweep_decade_lo").MustInt(cfg.SweepDecLo)
	cfg.SweepDecHi = solver.Key("sweep_decade_hi").MustInt(cfg.SweepDecHi)

	for _, sec := range file.ChildSections("fluid") {
		name := strings.TrimPrefix(sec.Name(), "fluid.")
		cfg.ExtraFluids[name] = props.FluidProperties{
			Rho: sec.Key("rho").MustFloat64(0),
			Mu:  sec.Key("mu").MustFloat64(0),
		}
	}
	for _, sec := range file.ChildSections("material") {
		name := strings.TrimPrefix(sec.Name(), "material.")
		cfg.ExtraMaterial[name] = props.MaterialProperties{
			Rho:       sec.Key("rho").MustFloat64(0),
			EpsR:      sec.Key("eps_r").MustFloat64(1),
			MuR:       sec.Key("mu_r").MustFloat64(1),
			Roughness: sec.Key("rough").MustFloat64(0),
		}
	}
	return cfg
}
