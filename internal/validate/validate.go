// Package validate holds parameter range checks and stability guards shared
// by the formation and evolution packages.
package validate

import (
	"fmt"
	"strings"

	"github.com/san-kum/starforge/internal/physics"
	"github.com/san-kum/starforge/internal/sim"
)

// Range is an inclusive numeric bound.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Accepted parameter ranges. Cloud radius is in parsecs, turbulence in km/s,
// magnetic field in microgauss, angular momentum in kg*m^2/s.
var (
	StellarMassRange     = Range{0.08, 150}
	CloudMassRange       = Range{0.1, 1e6}
	MetallicityRange     = Range{0.001, 10}
	AngularMomentumRange = Range{1e30, 1e50}
	TemperatureRange     = Range{2.7, 1e4}
	CloudRadiusRange     = Range{1e-3, 1e3}
	TurbulenceRange      = Range{0, 50}
	MagneticFieldRange   = Range{0, 1e4}
	EccentricityRange    = Range{0, 0.999999}
)

// Typical-value bounds: values outside these are legal but draw an
// extreme-values warning.
var (
	typicalCloudMass   = Range{0.5, 1e4}
	typicalMetallicity = Range{0.1, 3}
)

// Cloud rejects malformed cloud parameters, collecting every violation into
// a single invalid-parameters error. Optional fields are only checked when
// set (non-zero).
func Cloud(p sim.CloudParameters) error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if !CloudMassRange.Contains(p.Mass) {
		add("cloud mass %g outside [%g, %g] solar masses", p.Mass, CloudMassRange.Min, CloudMassRange.Max)
	}
	if !MetallicityRange.Contains(p.Metallicity) {
		add("metallicity %g outside [%g, %g]", p.Metallicity, MetallicityRange.Min, MetallicityRange.Max)
	}
	if !AngularMomentumRange.Contains(p.AngularMomentum) {
		add("angular momentum %g outside [%g, %g] kg*m^2/s", p.AngularMomentum, AngularMomentumRange.Min, AngularMomentumRange.Max)
	}
	if p.Temperature != 0 && !TemperatureRange.Contains(p.Temperature) {
		add("temperature %g outside [%g, %g] K", p.Temperature, TemperatureRange.Min, TemperatureRange.Max)
	}
	if p.Radius != 0 && !CloudRadiusRange.Contains(p.Radius) {
		add("radius %g outside [%g, %g] pc", p.Radius, CloudRadiusRange.Min, CloudRadiusRange.Max)
	}
	if p.TurbulenceVelocity != 0 && !TurbulenceRange.Contains(p.TurbulenceVelocity) {
		add("turbulence velocity %g outside [%g, %g] km/s", p.TurbulenceVelocity, TurbulenceRange.Min, TurbulenceRange.Max)
	}
	if p.MagneticField != 0 && !MagneticFieldRange.Contains(p.MagneticField) {
		add("magnetic field %g outside [%g, %g] uG", p.MagneticField, MagneticFieldRange.Min, MagneticFieldRange.Max)
	}

	if len(problems) > 0 {
		return sim.Errorf(sim.KindInvalidParameters, "%s", strings.Join(problems, "; ")).
			WithDetails(map[string]float64{
				"mass":             p.Mass,
				"metallicity":      p.Metallicity,
				"angular_momentum": p.AngularMomentum,
			})
	}
	return nil
}

// CloudWarnings reports legal but atypical parameter values.
func CloudWarnings(p sim.CloudParameters) []string {
	var warnings []string
	if !typicalCloudMass.Contains(p.Mass) {
		warnings = append(warnings, fmt.Sprintf("cloud mass %g solar masses is outside the typical range", p.Mass))
	}
	if !typicalMetallicity.Contains(p.Metallicity) {
		warnings = append(warnings, fmt.Sprintf("metallicity %g is outside the typical range", p.Metallicity))
	}
	return warnings
}

// StellarMass rejects masses outside the stellar range.
func StellarMass(m float64) error {
	if !StellarMassRange.Contains(m) {
		return sim.Errorf(sim.KindInvalidParameters,
			"stellar mass %g outside [%g, %g] solar masses", m, StellarMassRange.Min, StellarMassRange.Max).
			WithDetails(map[string]float64{"mass": m})
	}
	return nil
}

// OrbitSpacing checks a generated planet set for Hill-sphere crowding.
// Planets must arrive sorted by semi-major axis. A violation is a warning
// condition, not a failure: the caller logs it and continues.
func OrbitSpacing(planets []sim.Planet, starMass float64) error {
	for i := 1; i < len(planets); i++ {
		prev, cur := planets[i-1], planets[i]
		hill := physics.HillRadius(prev.SemiMajorAxis, prev.Mass, starMass)
		if cur.SemiMajorAxis-prev.SemiMajorAxis < 3*hill {
			return sim.Errorf(sim.KindUnstableSystem,
				"planets %q and %q closer than 3 Hill radii (%g AU apart)",
				prev.Name, cur.Name, cur.SemiMajorAxis-prev.SemiMajorAxis)
		}
	}
	return nil
}
