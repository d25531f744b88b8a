package physics

import (
	"math"

	"github.com/san-kum/starforge/internal/sim"
)

// Luminosity returns main-sequence luminosity in solar units from mass in
// solar masses, using the empirical piecewise mass-luminosity relation.
// The band breakpoints at 0.43, 2 and 55 solar masses are fixed.
func Luminosity(mass float64) float64 {
	switch {
	case mass < 0.43:
		return 0.23 * SafePow(mass, 2.3, 0)
	case mass < 2:
		return SafePow(mass, 4.0, 0)
	case mass < 55:
		return 1.4 * SafePow(mass, 3.5, 0)
	default:
		return 32000 * mass
	}
}

// Radius returns main-sequence radius in solar units from mass in solar
// masses.
func Radius(mass float64) float64 {
	if mass < 1 {
		return SafePow(mass, 0.8, 0)
	}
	return SafePow(mass, 0.57, 0)
}

// Temperature inverts the Stefan-Boltzmann law: effective temperature in
// kelvin from luminosity and radius in solar units.
func Temperature(luminosity, radius float64) (float64, error) {
	if luminosity <= 0 || radius <= 0 {
		return 0, sim.Errorf(sim.KindNumericalInstability,
			"temperature undefined for luminosity=%g radius=%g", luminosity, radius)
	}
	lsi := luminosity * SolarLuminosity
	rsi := radius * SolarRadius
	t := math.Pow(lsi/(4*math.Pi*rsi*rsi*StefanBoltzmann), 0.25)
	if err := sim.CheckFinite("temperature", t); err != nil {
		return 0, err
	}
	return t, nil
}

// spectralThresholds is evaluated hottest first; the first class whose
// threshold the temperature meets wins.
var spectralThresholds = []struct {
	minTemp float64
	class   sim.SpectralClass
}{
	{30000, sim.ClassO},
	{10000, sim.ClassB},
	{7500, sim.ClassA},
	{6000, sim.ClassF},
	{5200, sim.ClassG},
	{3700, sim.ClassK},
}

// SpectralType classifies an effective temperature into O through M.
func SpectralType(temperature float64) sim.SpectralClass {
	for _, b := range spectralThresholds {
		if temperature >= b.minTemp {
			return b.class
		}
	}
	return sim.ClassM
}

// MainSequenceLifetime returns the hydrogen-burning lifetime in years,
// scaling the solar lifetime by the fuel-to-burn-rate ratio m/L.
func MainSequenceLifetime(mass float64) float64 {
	l := Luminosity(mass)
	return SolarLifetime * SafeDiv(mass, l, 1)
}
