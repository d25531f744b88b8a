// Package planets builds protoplanetary disks and populates them with
// planets at Hill-stable orbital distances.
package planets

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/starforge/internal/logging"
	"github.com/san-kum/starforge/internal/physics"
	"github.com/san-kum/starforge/internal/sim"
	"github.com/san-kum/starforge/internal/validate"
)

// MaxPlanetsDefault is the per-disk planet cap when the caller passes zero.
const MaxPlanetsDefault = 10

// Spacing constants: each next orbit is at least minHillSpacing Hill radii
// beyond the previous planet, with a multiplicative stretch so gaps grow
// outward.
const (
	minHillSpacing = 3.5
	spreadMin      = 1.4
	spreadMax      = 1.8
)

// CreateDisk derives a protoplanetary disk from a star. It returns nil when
// the disk is too light relative to the star to form planets; a star with no
// disk is a valid outcome, not an error.
func CreateDisk(star sim.Star) *sim.ProtoplanetaryDisk {
	mass := physics.DiskMass(star.Mass, star.Metallicity)
	if mass < physics.MinDiskMassFraction*star.Mass {
		return nil
	}
	return &sim.ProtoplanetaryDisk{
		StarID:      star.ID,
		Mass:        mass,
		InnerRadius: physics.DiskInnerRadius(star.Mass),
		OuterRadius: physics.DiskOuterRadius(star.Mass, 0),
		SnowLine:    physics.SnowLine(star.Luminosity),
		Metallicity: star.Metallicity,
	}
}

// CreateDiskWithBraking is CreateDisk with a magnetic field (microgauss)
// shrinking the outer edge.
func CreateDiskWithBraking(star sim.Star, fieldMicrogauss float64) *sim.ProtoplanetaryDisk {
	disk := CreateDisk(star)
	if disk == nil {
		return nil
	}
	disk.OuterRadius = physics.DiskOuterRadius(star.Mass, fieldMicrogauss)
	disk.MagneticBraking = fieldMicrogauss
	return disk
}

// Generate populates the disk with up to maxPlanets planets at strictly
// increasing orbital distances. A failure to build one planet is logged and
// skipped; the batch never fails as a whole, it just yields fewer planets.
func Generate(disk *sim.ProtoplanetaryDisk, star sim.Star, maxPlanets int, rng *rand.Rand, log *logging.Logger, errlog *sim.ErrorLog) []sim.Planet {
	if disk == nil {
		return nil
	}
	if maxPlanets <= 0 {
		maxPlanets = MaxPlanetsDefault
	}

	planets := make([]sim.Planet, 0, maxPlanets)
	distance := disk.InnerRadius * (1 + 0.5*rng.Float64())

	for len(planets) < maxPlanets && distance <= disk.OuterRadius {
		planet, err := buildPlanet(disk, star, distance, len(planets)+1, rng)
		if err != nil {
			log.Warnf("skipping planet at %.2f AU: %v", distance, err)
			errlog.Record(star.Age, sim.KindNumericalInstability,
				fmt.Sprintf("planet generation failed at %.2f AU around %s", distance, star.Name))
			distance *= spreadMin
			continue
		}
		planets = append(planets, planet)

		hill := physics.HillRadius(planet.SemiMajorAxis, planet.Mass, star.Mass)
		next := distance * (spreadMin + (spreadMax-spreadMin)*rng.Float64())
		if floor := distance + minHillSpacing*hill; next < floor {
			next = floor
		}
		distance = next
	}

	if err := validate.OrbitSpacing(planets, star.Mass); err != nil {
		log.Warnf("%v", err)
		errlog.Record(star.Age, sim.KindUnstableSystem, err.Error())
	}
	return planets
}

func buildPlanet(disk *sim.ProtoplanetaryDisk, star sim.Star, distance float64, index int, rng *rand.Rand) (sim.Planet, error) {
	comp := physics.ClassifyComposition(distance, disk.SnowLine, disk.Metallicity)
	mass := physics.PlanetMass(comp, disk.Mass, distance, disk.Metallicity, rng)
	radius := physics.PlanetRadius(mass, comp)
	period, err := physics.OrbitalPeriod(distance, star.Mass)
	if err != nil {
		return sim.Planet{}, err
	}
	if err := sim.CheckFinite("planet properties", mass, radius, period); err != nil {
		return sim.Planet{}, err
	}
	return sim.Planet{
		Name:          fmt.Sprintf("%s %s", star.Name, roman(index)),
		Mass:          mass,
		Radius:        radius,
		Composition:   comp,
		SemiMajorAxis: distance,
		Eccentricity:  0.3 * rng.Float64(),
		OrbitalPeriod: period,
		ParentStarID:  star.ID,
	}, nil
}

func roman(n int) string {
	numerals := []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}
	if n >= 1 && n <= len(numerals) {
		return numerals[n-1]
	}
	return fmt.Sprintf("%d", n)
}
