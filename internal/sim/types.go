// Package sim holds the star-system data model and the Simulation
// controller that owns and advances it.
package sim

import (
	"github.com/go-gl/mathgl/mgl64"
)

// SpectralClass is the Morgan-Keenan letter class derived from effective
// temperature.
type SpectralClass string

const (
	ClassO SpectralClass = "O"
	ClassB SpectralClass = "B"
	ClassA SpectralClass = "A"
	ClassF SpectralClass = "F"
	ClassG SpectralClass = "G"
	ClassK SpectralClass = "K"
	ClassM SpectralClass = "M"
)

// EvolutionPhase enumerates the stellar life-cycle states.
type EvolutionPhase int

const (
	Protostar EvolutionPhase = iota
	MainSequence
	RedGiant
	HorizontalBranch
	AsymptoticGiant
	PlanetaryNebula
	WhiteDwarf
	NeutronStar
	BlackHole
)

func (p EvolutionPhase) String() string {
	switch p {
	case Protostar:
		return "protostar"
	case MainSequence:
		return "main sequence"
	case RedGiant:
		return "red giant"
	case HorizontalBranch:
		return "horizontal branch"
	case AsymptoticGiant:
		return "asymptotic giant"
	case PlanetaryNebula:
		return "planetary nebula"
	case WhiteDwarf:
		return "white dwarf"
	case NeutronStar:
		return "neutron star"
	case BlackHole:
		return "black hole"
	}
	return "unknown"
}

// Terminal reports whether the phase is an end state that no further
// evolution leaves.
func (p EvolutionPhase) Terminal() bool {
	return p == WhiteDwarf || p == NeutronStar || p == BlackHole
}

// Composition is the bulk makeup of a planet.
type Composition int

const (
	Rocky Composition = iota
	IceGiant
	GasGiant
)

func (c Composition) String() string {
	switch c {
	case Rocky:
		return "rocky"
	case IceGiant:
		return "ice giant"
	case GasGiant:
		return "gas giant"
	}
	return "unknown"
}

// CloudParameters describe the collapsing molecular cloud a system forms
// from. Mass is in solar masses, AngularMomentum in kg*m^2/s, Temperature in
// kelvin, Radius in parsecs, TurbulenceVelocity in km/s and MagneticField in
// microgauss. Zero values for the optional fields mean "use defaults".
// The struct is stored verbatim on the resulting system so a backward time
// jump can rebuild it from scratch.
type CloudParameters struct {
	Mass               float64
	Metallicity        float64
	AngularMomentum    float64
	Temperature        float64
	Radius             float64
	TurbulenceVelocity float64
	MagneticField      float64
}

// DerivedCloudProperties are computed once from CloudParameters and decide
// collapse, fragmentation and efficiency. JeansMass is in solar masses,
// TurbulentJeansLength in meters.
type DerivedCloudProperties struct {
	JeansMass            float64
	VirialParameter      float64
	IsBound              bool
	TurbulentJeansLength float64
}

// StellarStructure is a coarse interior snapshot, updated incrementally as
// the star evolves. Core temperature in kelvin, core density in kg/m^3,
// HydrogenFraction is the remaining core hydrogen mass fraction.
type StellarStructure struct {
	CoreTemperature  float64
	CoreDensity      float64
	HydrogenFraction float64
}

// Star is a single star. Mass, metallicity and lifetime are fixed at
// formation; radius, luminosity, temperature, spectral class and phase are
// recomputed by evolution. Radius and luminosity are in solar units,
// temperature in kelvin, age and lifetime in years, position in AU and
// velocity in AU/yr.
type Star struct {
	ID          int
	Name        string
	Mass        float64
	Radius      float64
	Luminosity  float64
	Temperature float64
	Age         float64
	Metallicity float64
	Spectral    SpectralClass
	Phase       EvolutionPhase
	Lifetime    float64
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Structure   *StellarStructure
}

// Planet is a planet on a fixed Keplerian orbit around one star of the
// system. Mass in Earth masses, radius in Earth radii, semi-major axis in
// AU, orbital period in years. ParentStarID is a back-reference into the
// owning system's star list, not ownership. Position is recomputed from the
// orbital elements and the parent star's position every tick.
type Planet struct {
	ID            int
	Name          string
	Mass          float64
	Radius        float64
	Composition   Composition
	SemiMajorAxis float64
	Eccentricity  float64
	OrbitalPeriod float64
	ParentStarID  int
	Position      mgl64.Vec3
}

// ProtoplanetaryDisk is the transient disk a star's planets condense from.
// It is consumed during planet generation and not retained on the system.
// Mass in solar masses, radii and snow line in AU.
type ProtoplanetaryDisk struct {
	StarID          int
	Mass            float64
	InnerRadius     float64
	OuterRadius     float64
	SnowLine        float64
	Metallicity     float64
	MagneticBraking float64
}

// StarSystem is the complete simulated system. Stars are ordered by
// formation mass rank (largest first); Planets is flat across all stars.
// Age mirrors the controller's current time.
type StarSystem struct {
	ID      int
	Name    string
	Stars   []Star
	Planets []Planet
	Age     float64
	Cloud   CloudParameters
	Derived DerivedCloudProperties
}

// StarByID resolves a planet's parent back-reference. Returns nil when the
// id is unknown.
func (s *StarSystem) StarByID(id int) *Star {
	for i := range s.Stars {
		if s.Stars[i].ID == id {
			return &s.Stars[i]
		}
	}
	return nil
}

// RunState is the controller's execution state.
type RunState int

const (
	Stopped RunState = iota
	Running
	Paused
)

func (s RunState) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// Status is the read-only projection handed to presentation layers.
type Status struct {
	State       RunState
	CurrentTime float64
	TimeScale   float64
	System      *StarSystem
}
