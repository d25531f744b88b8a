package cloud

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/starforge/internal/logging"
	"github.com/san-kum/starforge/internal/physics"
	"github.com/san-kum/starforge/internal/sim"
)

// Binary configuration constants.
const (
	binaryEccMin = 0.1
	binaryEccMax = 0.4
	// Separation clamp in AU when the cloud's angular momentum implies an
	// implausible orbit.
	minSeparation = 0.1
	maxSeparation = 1e4
	// Fraction of the system angular momentum given to the inner binary of
	// a hierarchical multiple.
	innerBinaryShare = 0.6
	maxInclination   = 15 * math.Pi / 180
)

// configureOrbits places the system's stars. Singles stay at the origin,
// pairs become a binary with the center of mass at the origin, and larger
// multiples become a hierarchy: the two most massive stars form an inner
// binary, the rest orbit at strictly increasing distances.
func configureOrbits(system *sim.StarSystem, rng *rand.Rand, log *logging.Logger, errlog *sim.ErrorLog) {
	stars := system.Stars
	switch len(stars) {
	case 1:
		return
	case 2:
		configureBinary(stars, system.Cloud.AngularMomentum, rng, log, errlog)
	default:
		configureHierarchy(stars, system.Cloud.AngularMomentum, rng, log, errlog)
	}
}

// configureBinary places star 2 at its orbital position and star 1 at the
// mass-ratio-weighted opposite so the center of mass sits at the origin.
// Stars arrive sorted by mass descending.
func configureBinary(stars []sim.Star, angularMomentum float64, rng *rand.Rand, log *logging.Logger, errlog *sim.ErrorLog) {
	m1, m2 := stars[0].Mass, stars[1].Mass
	ecc := binaryEccMin + (binaryEccMax-binaryEccMin)*rng.Float64()

	a, err := physics.SemiMajorAxisFromAngularMomentum(angularMomentum, m1, m2, ecc)
	if err != nil || a < minSeparation || a > maxSeparation {
		clamped := physics.Clamp(a, minSeparation, maxSeparation)
		log.Warnf("binary separation %.3g AU implausible, clamping to %.3g AU", a, clamped)
		errlog.Record(0, sim.KindExtremeValues, "binary separation clamped")
		a = clamped
	}

	total := m1 + m2
	r1 := a * m2 / total
	r2 := a * m1 / total
	stars[1].Position = mgl64.Vec3{r2, 0, 0}
	stars[0].Position = mgl64.Vec3{-r1, 0, 0}

	period, err := physics.OrbitalPeriod(a, total)
	if err != nil {
		return
	}
	v1 := 2 * math.Pi * r1 / period
	v2 := 2 * math.Pi * r2 / period
	stars[0].Velocity = mgl64.Vec3{0, -v1, 0}
	stars[1].Velocity = mgl64.Vec3{0, v2, 0}
}

// configureHierarchy builds an inner binary from the two most massive stars
// and parks the rest on widening, slightly inclined orbits. Each companion
// is strictly farther out than the previous one by construction.
func configureHierarchy(stars []sim.Star, angularMomentum float64, rng *rand.Rand, log *logging.Logger, errlog *sim.ErrorLog) {
	configureBinary(stars[:2], innerBinaryShare*angularMomentum, rng, log, errlog)

	innerSep := stars[1].Position.Sub(stars[0].Position).Len()
	totalMass := 0.0
	for i := range stars {
		totalMass += stars[i].Mass
	}

	for i := 2; i < len(stars); i++ {
		distance := float64(5+2*i) * innerSep
		azimuth := 2 * math.Pi * rng.Float64()
		inclination := (2*rng.Float64() - 1) * maxInclination
		stars[i].Position = physics.InclinedPosition(distance, azimuth, inclination)

		speed := physics.CircularVelocity(distance, totalMass)
		stars[i].Velocity = mgl64.Vec3{-math.Sin(azimuth) * speed, math.Cos(azimuth) * speed, 0}
	}
}
