package config

import "sort"

// Presets are ready-made cloud scenarios.
var Presets = map[string]*Config{
	"solar": {
		Name: "solar", Seed: DefaultSeed, TimeScale: 1, Duration: 1e10, Step: 1e8, MaxPlanets: 10,
		Cloud: CloudConfig{Mass: 1.0, Metallicity: 1.0, AngularMomentum: 1e42},
	},
	// binary: a compact warm core spans two turbulent Jeans lengths, so the
	// cloud splits in exactly two.
	"binary": {
		Name: "binary", Seed: DefaultSeed, TimeScale: 1, Duration: 5e9, Step: 1e8, MaxPlanets: 8,
		Cloud: CloudConfig{Mass: 1.5, Metallicity: 0.8, AngularMomentum: 5e45, Radius: 0.004, Temperature: 30},
	},
	"cluster": {
		Name: "cluster", Seed: DefaultSeed, TimeScale: 1, Duration: 1e9, Step: 1e7, MaxPlanets: 5,
		Cloud: CloudConfig{Mass: 200, Metallicity: 1.2, AngularMomentum: 1e46, Turbulence: 0.4},
	},
	"metal-poor": {
		Name: "metal-poor", Seed: DefaultSeed, TimeScale: 1, Duration: 1e10, Step: 1e8, MaxPlanets: 10,
		Cloud: CloudConfig{Mass: 2.0, Metallicity: 0.05, AngularMomentum: 1e42},
	},
	"braked": {
		Name: "braked", Seed: DefaultSeed, TimeScale: 1, Duration: 1e10, Step: 1e8, MaxPlanets: 10,
		Cloud: CloudConfig{Mass: 1.2, Metallicity: 1.0, AngularMomentum: 1e42, MagneticField: 80},
	},
	// sparse does not collapse: demonstrates the insufficient-mass failure.
	"sparse": {
		Name: "sparse", Seed: DefaultSeed, TimeScale: 1, Duration: 1e9, Step: 1e8, MaxPlanets: 10,
		Cloud: CloudConfig{Mass: 5, Metallicity: 1.0, AngularMomentum: 1e42, Radius: 1.0, Temperature: 40},
	},
}

// GetPreset returns a named preset or nil.
func GetPreset(name string) *Config {
	return Presets[name]
}

// ListPresets returns preset names sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
