package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/starforge/internal/sim"
)

const (
	DefaultSeed       = 42
	DefaultTimeScale  = 1.0
	DefaultDuration   = 1e10 // years
	DefaultStep       = 1e8  // years per update
	DefaultMaxPlanets = 10
)

// Config is a yaml scenario file: the cloud to collapse plus run settings.
type Config struct {
	Name       string      `yaml:"name"`
	Seed       int64       `yaml:"seed"`
	TimeScale  float64     `yaml:"time_scale"`
	Duration   float64     `yaml:"duration"`
	Step       float64     `yaml:"step"`
	MaxPlanets int         `yaml:"max_planets"`
	Cloud      CloudConfig `yaml:"cloud"`
}

// CloudConfig mirrors sim.CloudParameters with yaml tags. Units: solar
// masses, kg*m^2/s, kelvin, parsecs, km/s, microgauss.
type CloudConfig struct {
	Mass            float64 `yaml:"mass"`
	Metallicity     float64 `yaml:"metallicity"`
	AngularMomentum float64 `yaml:"angular_momentum"`
	Temperature     float64 `yaml:"temperature"`
	Radius          float64 `yaml:"radius"`
	Turbulence      float64 `yaml:"turbulence"`
	MagneticField   float64 `yaml:"magnetic_field"`
}

// Parameters converts to the simulation input struct.
func (c CloudConfig) Parameters() sim.CloudParameters {
	return sim.CloudParameters{
		Mass:               c.Mass,
		Metallicity:        c.Metallicity,
		AngularMomentum:    c.AngularMomentum,
		Temperature:        c.Temperature,
		Radius:             c.Radius,
		TurbulenceVelocity: c.Turbulence,
		MagneticField:      c.MagneticField,
	}
}

// DefaultConfig is a solar-analog scenario.
func DefaultConfig() *Config {
	return &Config{
		Name:       "solar",
		Seed:       DefaultSeed,
		TimeScale:  DefaultTimeScale,
		Duration:   DefaultDuration,
		Step:       DefaultStep,
		MaxPlanets: DefaultMaxPlanets,
		Cloud: CloudConfig{
			Mass:            1.0,
			Metallicity:     1.0,
			AngularMomentum: 1e42,
		},
	}
}

// Load reads a scenario file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a scenario file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
