package physics

import (
	"math/rand"

	"github.com/san-kum/starforge/internal/sim"
)

// Disk formation constants.
const (
	// DiskMassFraction scales disk mass from stellar mass at solar
	// metallicity (minimum-mass solar nebula scale).
	DiskMassFraction = 0.01

	// MinDiskMassFraction is the disk-to-star mass ratio below which no
	// planet-forming disk survives.
	MinDiskMassFraction = 0.002

	// ReferenceField is the magnetic braking reference strength, microgauss.
	ReferenceField = 10.0

	// Disk outer radius clamp, AU.
	MinOuterRadius = 10.0
	MaxOuterRadius = 1000.0
)

// DiskMass returns protoplanetary disk mass in solar masses.
func DiskMass(starMass, metallicity float64) float64 {
	return DiskMassFraction * starMass * metallicity
}

// DiskInnerRadius returns the dust sublimation inner edge in AU.
func DiskInnerRadius(starMass float64) float64 {
	return 0.1 * SafeSqrt(starMass, 1)
}

// DiskOuterRadius returns the disk outer edge in AU. A non-zero magnetic
// field (microgauss) brakes the disk, shrinking the outer edge by
// (B/Bref)^-0.7. The result is clamped to [10, 1000] AU.
func DiskOuterRadius(starMass, fieldMicrogauss float64) float64 {
	outer := 100 * starMass
	if fieldMicrogauss > 0 {
		outer *= SafePow(fieldMicrogauss/ReferenceField, -0.7, 1)
	}
	return Clamp(outer, MinOuterRadius, MaxOuterRadius)
}

// SnowLine returns the water ice condensation distance in AU for a star of
// the given luminosity (solar units).
func SnowLine(luminosity float64) float64 {
	return 2.7 * SafeSqrt(luminosity, 1)
}

// ClassifyComposition picks a planet's bulk composition from its distance
// relative to the snow line. Inside the snow line only rock condenses.
// Beyond it, metal-rich disks close to the line grow cores fast enough to
// accrete gas envelopes; everything else stays an ice giant.
func ClassifyComposition(distance, snowLine, metallicity float64) sim.Composition {
	if distance < snowLine {
		return sim.Rocky
	}
	if metallicity >= 0.6 && distance < 4*snowLine {
		return sim.GasGiant
	}
	return sim.IceGiant
}

// LocalDiskFactor is the surface density at the given distance relative to a
// minimum-mass solar nebula, falling off as d^-1.5.
func LocalDiskFactor(diskMass, distance float64) float64 {
	return SafeDiv(diskMass, DiskMassFraction, 1) * SafePow(distance, -1.5, 0)
}

// PlanetMass draws a planet mass in Earth masses for the given composition,
// scaled by local disk density and metallicity.
func PlanetMass(comp sim.Composition, diskMass, distance, metallicity float64, rng *rand.Rand) float64 {
	local := Clamp(LocalDiskFactor(diskMass, distance), 0.2, 3.0)
	switch comp {
	case sim.Rocky:
		return (0.3 + 2.7*rng.Float64()) * metallicity * local
	case sim.IceGiant:
		return (8 + 22*rng.Float64()) * local
	default: // gas giant
		return (60 + 240*rng.Float64()) * local
	}
}

// PlanetRadius returns radius in Earth radii from mass (Earth masses) and
// composition. Rocky worlds follow a m^0.28 law, ice giants a Neptune-
// calibrated root law, gas giants are nearly mass-independent.
func PlanetRadius(mass float64, comp sim.Composition) float64 {
	switch comp {
	case sim.Rocky:
		return SafePow(mass, 0.28, 1)
	case sim.IceGiant:
		return 0.94 * SafeSqrt(mass, 1)
	default:
		return 10.97 * SafePow(mass/317.8, 0.06, 1)
	}
}

// HabitableZone returns the inner and outer edges in AU of the liquid-water
// zone for the given stellar luminosity.
func HabitableZone(luminosity float64) (inner, outer float64) {
	s := SafeSqrt(luminosity, 1)
	return 0.95 * s, 1.37 * s
}
