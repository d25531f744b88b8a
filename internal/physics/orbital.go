package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/starforge/internal/sim"
)

// SemiMajorAxisFromAngularMomentum solves the two-body orbital angular
// momentum L = mu*sqrt(G*M*a*(1-e^2)) for the semi-major axis. Masses are in
// solar masses, angular momentum in kg*m^2/s; the result is in AU.
func SemiMajorAxisFromAngularMomentum(angularMomentum, m1, m2, eccentricity float64) (float64, error) {
	if m1 <= 0 || m2 <= 0 {
		return 0, sim.Errorf(sim.KindInvalidParameters, "non-positive mass in orbit solve: %g, %g", m1, m2)
	}
	if eccentricity < 0 || eccentricity >= 1 {
		return 0, sim.Errorf(sim.KindInvalidParameters, "eccentricity %g outside [0,1)", eccentricity)
	}
	mu := m1 * m2 / (m1 + m2) * SolarMass
	mtot := (m1 + m2) * SolarMass
	lOverMu := angularMomentum / mu
	a := lOverMu * lOverMu / (Gravity * mtot * (1 - eccentricity*eccentricity))
	aAU := a / AU
	if err := sim.CheckFinite("semi-major axis", aAU); err != nil {
		return 0, err
	}
	return aAU, nil
}

// OrbitalPeriod applies Kepler's third law in solar units: semi-major axis
// in AU, total mass in solar masses, period in years.
func OrbitalPeriod(semiMajorAxis, totalMass float64) (float64, error) {
	if semiMajorAxis <= 0 || totalMass <= 0 {
		return 0, sim.Errorf(sim.KindInvalidParameters,
			"orbital period undefined for a=%g M=%g", semiMajorAxis, totalMass)
	}
	p := math.Sqrt(semiMajorAxis * semiMajorAxis * semiMajorAxis / totalMass)
	if err := sim.CheckFinite("orbital period", p); err != nil {
		return 0, err
	}
	return p, nil
}

// OrbitAtTime returns the position on an elliptical orbit at time t (years),
// relative to the focus, in AU. The mean anomaly advances linearly and the
// ellipse polar equation is evaluated at the mean anomaly directly, without
// solving Kepler's equation. This is not bit-exact two-body motion: the
// along-track error grows with eccentricity, which is acceptable at the
// eccentricities generated here (e < 0.4).
func OrbitAtTime(semiMajorAxis, eccentricity, period, t, phase float64) mgl64.Vec3 {
	m := 2*math.Pi*SafeDiv(t, period, 0) + phase
	r := semiMajorAxis * (1 - eccentricity*eccentricity) / (1 + eccentricity*math.Cos(m))
	return mgl64.Vec3{r * math.Cos(m), r * math.Sin(m), 0}
}

// InclinedPosition places a point at the given distance, azimuth and
// inclination (radians), in AU.
func InclinedPosition(distance, azimuth, inclination float64) mgl64.Vec3 {
	ci := math.Cos(inclination)
	return mgl64.Vec3{
		distance * math.Cos(azimuth) * ci,
		distance * math.Sin(azimuth) * ci,
		distance * math.Sin(inclination),
	}
}

// CircularVelocity returns the circular orbital speed in AU/yr at the given
// distance (AU) around the given total mass (solar masses).
func CircularVelocity(distance, totalMass float64) float64 {
	return 2 * math.Pi * SafeSqrt(SafeDiv(totalMass, distance, 0), 0)
}

// HillRadius returns the Hill sphere radius in AU of a planet (mass in Earth
// masses) orbiting a star (mass in solar masses) at the given semi-major
// axis.
func HillRadius(semiMajorAxis, planetMass, starMass float64) float64 {
	m := planetMass * EarthToSolarMass
	return semiMajorAxis * math.Cbrt(SafeDiv(m, 3*starMass, 0))
}
