// Package evolve creates stars and advances them through their life-cycle
// phases. The phase is a pure function of mass and age ratio, recomputed
// from scratch on every call; there is no memoized state machine to drift.
package evolve

import (
	"math"

	"github.com/san-kum/starforge/internal/physics"
	"github.com/san-kum/starforge/internal/sim"
	"github.com/san-kum/starforge/internal/validate"
)

// Age ratio thresholds driving phase transitions.
const (
	protostarEnd  = 0.01
	mainSeqEnd    = 0.90
	redGiantEnd   = 0.95
	horizontalEnd = 0.98
	agbEnd        = 1.00
	nebulaEnd     = 1.01
)

// Mass cutoffs, solar masses.
const (
	lowMassCutoff   = 0.5 // below: giant phases are skipped entirely
	supernovaCutoff = 8   // at or above: core collapse instead of nebula
	blackHoleCutoff = 25  // at or above: collapse to a black hole
)

// FinalState returns the terminal phase for a star of the given mass.
// Comparisons are strict: 7.99 ends as a white dwarf, 8.01 as a neutron
// star, 25.01 as a black hole.
func FinalState(mass float64) sim.EvolutionPhase {
	switch {
	case mass < supernovaCutoff:
		return sim.WhiteDwarf
	case mass < blackHoleCutoff:
		return sim.NeutronStar
	default:
		return sim.BlackHole
	}
}

// PhaseFor maps (mass, ageRatio) to an evolution phase. Low-mass stars go
// straight from the main sequence to a white dwarf; massive stars supergiant
// through a single red-giant stage before collapsing.
func PhaseFor(mass, ageRatio float64) sim.EvolutionPhase {
	if ageRatio < protostarEnd {
		return sim.Protostar
	}
	if mass < lowMassCutoff {
		if ageRatio < agbEnd {
			return sim.MainSequence
		}
		return sim.WhiteDwarf
	}
	if ageRatio < mainSeqEnd {
		return sim.MainSequence
	}
	if mass >= supernovaCutoff {
		if ageRatio < agbEnd {
			return sim.RedGiant
		}
		return FinalState(mass)
	}
	switch {
	case ageRatio < redGiantEnd:
		return sim.RedGiant
	case ageRatio < horizontalEnd:
		return sim.HorizontalBranch
	case ageRatio < agbEnd:
		return sim.AsymptoticGiant
	case ageRatio < nebulaEnd:
		return sim.PlanetaryNebula
	default:
		return sim.WhiteDwarf
	}
}

// phaseMultipliers returns the luminosity and radius factors applied to the
// star's own main-sequence baseline in each phase, so stars of different
// mass diverge correctly within the same phase. The protostar is
// approximated at its zero-age values.
func phaseMultipliers(phase sim.EvolutionPhase, mass float64) (lum, rad float64) {
	switch phase {
	case sim.Protostar, sim.MainSequence:
		return 1, 1
	case sim.RedGiant:
		if mass >= supernovaCutoff {
			return 30, 400 // red supergiant
		}
		return 200, 100
	case sim.HorizontalBranch:
		return 50, 10
	case sim.AsymptoticGiant:
		return 2000, 300
	case sim.PlanetaryNebula:
		return 500, 150
	case sim.WhiteDwarf:
		return 1e-3, 0.01
	case sim.NeutronStar:
		return 1e-6, 2e-5
	default: // black hole
		return 1e-9, 1e-5
	}
}

// NewStar creates a protostar at age zero. Lifetime is fixed here from the
// initial mass and never recomputed, even though evolution recalculates
// luminosity and radius every call.
func NewStar(id int, mass, metallicity float64, name string) (sim.Star, error) {
	if err := validate.StellarMass(mass); err != nil {
		return sim.Star{}, err
	}
	lum := physics.Luminosity(mass)
	rad := physics.Radius(mass)
	temp, err := physics.Temperature(lum, rad)
	if err != nil {
		return sim.Star{}, err
	}
	if err := sim.CheckFinite("star properties", lum, rad, temp); err != nil {
		return sim.Star{}, err
	}
	star := sim.Star{
		ID:          id,
		Name:        name,
		Mass:        mass,
		Radius:      rad,
		Luminosity:  lum,
		Temperature: temp,
		Metallicity: metallicity,
		Spectral:    physics.SpectralType(temp),
		Phase:       sim.Protostar,
		Lifetime:    physics.MainSequenceLifetime(mass),
	}
	star.Structure = initialStructure(star)
	return star, nil
}

// Evolve returns a new star advanced by deltaTime years. The input is never
// mutated, so a caller can keep the previous value when the calculation
// fails.
func Evolve(star sim.Star, deltaTime float64) (sim.Star, error) {
	if deltaTime < 0 {
		return star, sim.Errorf(sim.KindInvalidParameters, "negative delta time %g", deltaTime)
	}

	next := star
	next.Age += deltaTime
	ratio := physics.SafeDiv(next.Age, next.Lifetime, 0)
	next.Phase = PhaseFor(next.Mass, ratio)

	lm, rm := phaseMultipliers(next.Phase, next.Mass)
	next.Luminosity = physics.Luminosity(next.Mass) * lm
	next.Radius = physics.Radius(next.Mass) * rm

	temp, err := physics.Temperature(next.Luminosity, next.Radius)
	if err != nil {
		return star, err
	}
	next.Temperature = temp
	next.Spectral = physics.SpectralType(temp)

	if err := sim.CheckFinite("evolved star", next.Luminosity, next.Radius, next.Temperature); err != nil {
		return star, err
	}

	next.Structure = evolveStructure(star.Structure, next, deltaTime)
	return next, nil
}

// initialStructure estimates the interior from virial core temperature, a
// centrally condensed density profile and primordial hydrogen.
func initialStructure(star sim.Star) *sim.StellarStructure {
	return &sim.StellarStructure{
		CoreTemperature:  coreTemperature(star),
		CoreDensity:      coreDensity(star),
		HydrogenFraction: 0.7,
	}
}

// evolveStructure advances the interior incrementally from its previous
// value: core hydrogen depletes over the main-sequence lifetime while the
// thermal estimates track the current radius.
func evolveStructure(prev *sim.StellarStructure, star sim.Star, deltaTime float64) *sim.StellarStructure {
	next := sim.StellarStructure{HydrogenFraction: 0.7}
	if prev != nil {
		next = *prev
	}
	burn := 0.7 * physics.SafeDiv(deltaTime, mainSeqEnd*star.Lifetime, 0)
	next.HydrogenFraction = math.Max(0, next.HydrogenFraction-burn)
	next.CoreTemperature = coreTemperature(star)
	next.CoreDensity = coreDensity(star)
	return &next
}

// coreTemperature is the virial estimate T_c ~ GMmu m_H/(k R), about 1.5e7 K
// for the sun.
func coreTemperature(star sim.Star) float64 {
	return 1.57e7 * physics.SafeDiv(star.Mass, star.Radius, 0)
}

// coreDensity assumes a central density around a hundred times the mean.
func coreDensity(star sim.Star) float64 {
	mean := star.Mass * physics.SolarMass /
		((4.0 / 3.0) * math.Pi * math.Pow(star.Radius*physics.SolarRadius, 3))
	return 100 * mean
}
