// Package cloud turns molecular-cloud parameters into an initial star
// system: collapse check, fragmentation, an IMF mass draw and orbital
// placement for multiples. All randomness flows through an injected
// *rand.Rand so runs are reproducible from a seed.
package cloud

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/san-kum/starforge/internal/evolve"
	"github.com/san-kum/starforge/internal/logging"
	"github.com/san-kum/starforge/internal/physics"
	"github.com/san-kum/starforge/internal/sim"
	"github.com/san-kum/starforge/internal/validate"
)

// Defaults for the optional cloud parameters.
const (
	defaultTemperature = 10.0 // K, cold molecular gas
	defaultTurbulence  = 0.2  // km/s
	// defaultRadiusCoeff gives R = 0.02 * m^(1/3) pc, i.e. dense-core
	// densities independent of mass.
	defaultRadiusCoeff = 0.02
)

// Fragmentation limits.
const (
	MaxFragments = 10
	salpeterSlope = 2.35
	// jBonusThreshold is the specific angular momentum (m^2/s) above which
	// rotation drives one extra fragment.
	jBonusThreshold = 1e16
)

// withDefaults fills the optional fields.
func withDefaults(p sim.CloudParameters) sim.CloudParameters {
	if p.Temperature == 0 {
		p.Temperature = defaultTemperature
	}
	if p.TurbulenceVelocity == 0 {
		p.TurbulenceVelocity = defaultTurbulence
	}
	if p.Radius == 0 {
		p.Radius = defaultRadiusCoeff * math.Cbrt(p.Mass)
	}
	return p
}

// DeriveProperties computes the collapse diagnostics once from the cloud
// parameters: Jeans mass (solar masses), virial parameter, boundness and the
// turbulent Jeans length (meters).
func DeriveProperties(params sim.CloudParameters) (sim.DerivedCloudProperties, error) {
	p := withDefaults(params)

	massSI := p.Mass * physics.SolarMass
	radiusSI := p.Radius * physics.Parsec
	volume := (4.0 / 3.0) * math.Pi * math.Pow(radiusSI, 3)
	density := physics.SafeDiv(massSI, volume, 0)

	// Thermal Jeans mass: (5kT / G mu m_H)^(3/2) * (3 / 4 pi rho)^(1/2).
	thermal := 5 * physics.Boltzmann * p.Temperature /
		(physics.Gravity * physics.MeanMolecular * physics.HydrogenMass)
	jeansSI := math.Pow(thermal, 1.5) * physics.SafeSqrt(3/(4*math.Pi*density), 0)

	sigma := p.TurbulenceVelocity * 1000 // km/s -> m/s
	virial := 5 * sigma * sigma * radiusSI / (physics.Gravity * massSI)

	soundSpeed2 := physics.Boltzmann * p.Temperature / (physics.MeanMolecular * physics.HydrogenMass)
	sigmaEff2 := soundSpeed2 + sigma*sigma
	jeansLength := physics.SafeSqrt(math.Pi*sigmaEff2/(physics.Gravity*density), 0)

	d := sim.DerivedCloudProperties{
		JeansMass:            jeansSI / physics.SolarMass,
		VirialParameter:      virial,
		IsBound:              virial < 2,
		TurbulentJeansLength: jeansLength,
	}
	if err := sim.CheckFinite("cloud properties", d.JeansMass, d.VirialParameter, d.TurbulentJeansLength); err != nil {
		return sim.DerivedCloudProperties{}, err
	}
	return d, nil
}

// FormationEfficiency maps the virial parameter to the fraction of cloud
// mass that ends up in stars: 30-50% for strongly bound clouds, 10-30% for
// marginal ones, an exponential tail floored at 1% beyond.
func FormationEfficiency(virial float64) float64 {
	switch {
	case virial < 1:
		return 0.3 + 0.2*(1-virial)
	case virial < 2:
		return 0.3 - 0.2*(virial-1)
	default:
		return math.Max(0.01, 0.1*math.Exp(-(virial-2)))
	}
}

// NumberOfStars returns how many fragments the cloud collapses into, zero
// when it does not collapse at all. The count combines the mass-to-Jeans
// ratio, a turbulence multiplier, an angular-momentum bonus and a penalty
// for marginally bound clouds, capped at MaxFragments and by the number of
// turbulent Jeans lengths that fit in the cloud.
func NumberOfStars(params sim.CloudParameters, derived sim.DerivedCloudProperties) int {
	p := withDefaults(params)
	if !derived.IsBound || p.Mass < derived.JeansMass {
		return 0
	}
	count := rawFragmentCount(p, derived)
	if count > MaxFragments {
		count = MaxFragments
	}
	if geo := geometricCap(p, derived); count > geo {
		count = geo
	}
	if count < 1 {
		count = 1
	}
	return count
}

// rawFragmentCount is the uncapped estimate, exposed to let generation warn
// when it exceeds MaxFragments.
func rawFragmentCount(p sim.CloudParameters, derived sim.DerivedCloudProperties) int {
	base := physics.SafeDiv(p.Mass, derived.JeansMass, 1)
	turb := 1 + p.TurbulenceVelocity // km/s; supersonic clouds shatter more
	penalty := 1.0
	if derived.VirialParameter > 1 {
		penalty = 2 - derived.VirialParameter
	}
	n := int(base * turb * penalty)

	j := physics.SafeDiv(p.AngularMomentum, p.Mass*physics.SolarMass, 0)
	if j > jBonusThreshold {
		n++
	}
	return n
}

// geometricCap limits fragmentation to the number of turbulent Jeans volumes
// in the cloud.
func geometricCap(p sim.CloudParameters, derived sim.DerivedCloudProperties) int {
	r := p.Radius * physics.Parsec
	ratio := physics.SafeDiv(r, derived.TurbulentJeansLength, 0)
	limit := int(ratio * ratio * ratio)
	if limit < 1 {
		limit = 1
	}
	return limit
}

// MassDistribution draws numStars fragment masses totalling
// totalMass*efficiency. A single star takes the whole budget; multiples are
// drawn from a Salpeter power law, rescaled to the budget, sorted largest
// first and clamped into the valid stellar range. Downstream naming and
// binary configuration rely on the descending order.
func MassDistribution(totalMass float64, numStars int, efficiency float64, rng *rand.Rand) []float64 {
	if numStars <= 0 {
		return nil
	}
	budget := totalMass * efficiency
	if numStars == 1 {
		return []float64{budget}
	}

	mMin := validate.StellarMassRange.Min
	mMax := math.Min(totalMass*0.5, validate.StellarMassRange.Max)
	if mMax <= mMin {
		mMax = 2 * mMin
	}

	masses := make([]float64, numStars)
	sum := 0.0
	for i := range masses {
		masses[i] = salpeterDraw(mMin, mMax, rng)
		sum += masses[i]
	}
	scale := physics.SafeDiv(budget, sum, 1)
	for i := range masses {
		masses[i] *= scale
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(masses)))
	for i := range masses {
		masses[i] = physics.Clamp(masses[i], validate.StellarMassRange.Min, validate.StellarMassRange.Max)
	}
	return masses
}

// salpeterDraw inverts the Salpeter CDF (dN/dm ~ m^-2.35) over [mMin, mMax].
func salpeterDraw(mMin, mMax float64, rng *rand.Rand) float64 {
	exp := 1 - salpeterSlope
	lo := math.Pow(mMin, exp)
	hi := math.Pow(mMax, exp)
	return math.Pow(lo+rng.Float64()*(hi-lo), 1/exp)
}

// GenerateSystem runs the full formation pipeline: derive collapse
// diagnostics, fragment, draw masses, create protostars and place them.
// The returned system has no planets yet.
func GenerateSystem(params sim.CloudParameters, rng *rand.Rand, log *logging.Logger, errlog *sim.ErrorLog) (*sim.StarSystem, error) {
	derived, err := DeriveProperties(params)
	if err != nil {
		return nil, err
	}

	n := NumberOfStars(params, derived)
	if n == 0 {
		return nil, sim.Errorf(sim.KindInsufficientMass,
			"cloud of %g solar masses does not collapse (Jeans mass %.3g, virial %.3g)",
			params.Mass, derived.JeansMass, derived.VirialParameter).
			WithDetails(map[string]float64{
				"mass":       params.Mass,
				"jeans_mass": derived.JeansMass,
				"virial":     derived.VirialParameter,
			})
	}
	if raw := rawFragmentCount(withDefaults(params), derived); raw > MaxFragments {
		log.Warnf("fragment estimate %d exceeds cap %d, clamping", raw, MaxFragments)
		errlog.Record(0, sim.KindExtremeValues,
			fmt.Sprintf("fragment estimate %d clamped to %d", raw, MaxFragments))
	}

	efficiency := FormationEfficiency(derived.VirialParameter)
	masses := MassDistribution(params.Mass, n, efficiency, rng)

	for _, m := range masses {
		if err := sim.CheckFinite("fragment mass", m); err != nil {
			return nil, err
		}
	}

	system := &sim.StarSystem{
		ID:      1 + rng.Intn(9999),
		Cloud:   params,
		Derived: derived,
	}
	system.Name = fmt.Sprintf("SF-%04d", system.ID)

	for i, m := range masses {
		star, err := evolve.NewStar(i+1, m, params.Metallicity, starName(system.Name, i))
		if err != nil {
			// A fragment outside the stellar range is a brown dwarf or
			// worse; skip it but keep the rest of the system.
			log.Warnf("fragment %d (%.3g solar masses) did not ignite: %v", i, m, err)
			errlog.Record(0, sim.KindExtremeValues,
				fmt.Sprintf("fragment of %.3g solar masses did not ignite", m))
			continue
		}
		system.Stars = append(system.Stars, star)
	}
	if len(system.Stars) == 0 {
		return nil, sim.Errorf(sim.KindInsufficientMass,
			"no fragment reached stellar mass").
			WithDetails(map[string]float64{"fragments": float64(n)})
	}

	configureOrbits(system, rng, log, errlog)
	log.Infof("system %s: %d star(s) from %.3g solar mass cloud (efficiency %.0f%%)",
		system.Name, len(system.Stars), params.Mass, efficiency*100)
	return system, nil
}

func starName(system string, index int) string {
	letters := "ABCDEFGHIJ"
	if index < len(letters) {
		return fmt.Sprintf("%s %c", system, letters[index])
	}
	return fmt.Sprintf("%s %d", system, index+1)
}
