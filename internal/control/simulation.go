// Package control owns the simulation session: it holds the live star
// system, advances simulated time and exposes read-only snapshots.
//
// A Simulation is single-threaded by design. Every mutation replaces the
// star and planet slices wholesale rather than editing them in place, so a
// single caller is trivially safe and concurrent callers on one instance
// are trivially wrong without external serialization.
package control

import (
	"math/rand"

	"github.com/san-kum/starforge/internal/cloud"
	"github.com/san-kum/starforge/internal/evolve"
	"github.com/san-kum/starforge/internal/logging"
	"github.com/san-kum/starforge/internal/physics"
	"github.com/san-kum/starforge/internal/planets"
	"github.com/san-kum/starforge/internal/sim"
	"github.com/san-kum/starforge/internal/validate"
)

// goldenAngle spreads initial orbital phases so planets do not start
// collinear.
const goldenAngle = 2.399963229728653

// Simulation is the stateful controller. It is the only writer of its
// StarSystem.
type Simulation struct {
	log    *logging.Logger
	errors *sim.ErrorLog

	seed       int64
	rng        *rand.Rand
	maxPlanets int

	state       sim.RunState
	currentTime float64
	timeScale   float64
	system      *sim.StarSystem
}

// New returns a stopped simulation. A nil logger discards output.
func New(seed int64, log *logging.Logger) *Simulation {
	if log == nil {
		log = logging.Discard()
	}
	return &Simulation{
		log:        log,
		errors:     sim.NewErrorLog(sim.DefaultErrorLogSize),
		seed:       seed,
		maxPlanets: planets.MaxPlanetsDefault,
		timeScale:  1,
	}
}

// SetMaxPlanets bounds per-disk planet generation for subsequent
// initializations.
func (s *Simulation) SetMaxPlanets(n int) {
	if n > 0 {
		s.maxPlanets = n
	}
}

// Initialize validates the cloud parameters and builds a fresh star system
// at time zero. Fatal failures (malformed parameters, a cloud that cannot
// collapse) leave no partial state.
func (s *Simulation) Initialize(params sim.CloudParameters) (*sim.StarSystem, error) {
	if err := validate.Cloud(params); err != nil {
		return nil, err
	}
	for _, w := range validate.CloudWarnings(params) {
		s.log.Warnf("%s", w)
		s.errors.Record(0, sim.KindExtremeValues, w)
	}

	system, err := s.generate(params)
	if err != nil {
		return nil, err
	}
	s.system = system
	s.currentTime = 0
	s.state = sim.Stopped
	return system, nil
}

// generate runs formation from a fresh rng so the same seed always yields
// the same system. Backward jumps and resets rely on this.
func (s *Simulation) generate(params sim.CloudParameters) (*sim.StarSystem, error) {
	s.rng = rand.New(rand.NewSource(s.seed))

	system, err := cloud.GenerateSystem(params, s.rng, s.log, s.errors)
	if err != nil {
		return nil, err
	}

	nextID := 1
	for i := range system.Stars {
		star := system.Stars[i]
		disk := planets.CreateDiskWithBraking(star, params.MagneticField)
		if disk == nil {
			s.log.Debugf("star %s formed no disk", star.Name)
			continue
		}
		for _, p := range planets.Generate(disk, star, s.maxPlanets, s.rng, s.log, s.errors) {
			p.ID = nextID
			nextID++
			system.Planets = append(system.Planets, p)
		}
	}
	s.placePlanets(system, 0)
	return system, nil
}

// Start begins or resumes time advancement.
func (s *Simulation) Start() error {
	if s.system == nil {
		return sim.Errorf(sim.KindInvalidParameters, "no system initialized")
	}
	s.state = sim.Running
	return nil
}

// Pause freezes time advancement. Pause is a state flag, not a suspension:
// there is never in-flight work to interrupt.
func (s *Simulation) Pause() error {
	if s.state == sim.Running {
		s.state = sim.Paused
	}
	return nil
}

// Reset stops the simulation, rewinds to time zero and rebuilds the system
// from its initial cloud parameters with the original seed.
func (s *Simulation) Reset() error {
	s.state = sim.Stopped
	s.currentTime = 0
	if s.system == nil {
		return nil
	}
	system, err := s.generate(s.system.Cloud)
	if err != nil {
		return err
	}
	s.system = system
	return nil
}

// SetTimeScale sets the simulated-years-per-update multiplier.
func (s *Simulation) SetTimeScale(scale float64) error {
	if scale <= 0 || !physics.Finite(scale) {
		return sim.Errorf(sim.KindInvalidParameters, "time scale must be positive, got %g", scale)
	}
	s.timeScale = scale
	return nil
}

// Update advances simulated time by deltaTime*timeScale years. It is a
// no-op unless the simulation is running. The external driver chooses the
// cadence; the only requirement is deltaTime >= 0.
func (s *Simulation) Update(deltaTime float64) error {
	if deltaTime < 0 {
		return sim.Errorf(sim.KindInvalidParameters, "negative delta time %g", deltaTime)
	}
	if s.state != sim.Running || s.system == nil {
		return nil
	}
	s.advance(deltaTime * s.timeScale)
	return nil
}

// JumpTo moves to an absolute simulated time. Forward jumps evolve directly;
// backward jumps rebuild the system from the initial cloud parameters and
// fast-forward, which costs O(targetTime), not O(1).
func (s *Simulation) JumpTo(target float64) error {
	if target < 0 {
		return sim.Errorf(sim.KindInvalidParameters, "negative target time %g", target)
	}
	if s.system == nil {
		return sim.Errorf(sim.KindInvalidParameters, "no system initialized")
	}
	if target >= s.currentTime {
		s.advance(target - s.currentTime)
		return nil
	}
	system, err := s.generate(s.system.Cloud)
	if err != nil {
		return err
	}
	s.system = system
	s.currentTime = 0
	s.advance(target)
	return nil
}

// advance is the single mutation point: evolve every star by dt, then
// recompute every planet position at the new time. A star whose evolution
// fails keeps its previous value; the batch never fails as a whole.
func (s *Simulation) advance(dt float64) {
	s.currentTime += dt

	stars := make([]sim.Star, len(s.system.Stars))
	for i, star := range s.system.Stars {
		next, err := evolve.Evolve(star, dt)
		if err != nil {
			s.log.Warnf("star %s evolution failed, keeping previous state: %v", star.Name, err)
			s.errors.Record(s.currentTime, sim.KindNumericalInstability,
				"evolution failed for "+star.Name)
			next = star
		}
		stars[i] = next
	}
	s.system.Stars = stars
	s.placePlanets(s.system, s.currentTime)
	s.system.Age = s.currentTime
}

// placePlanets rebuilds the planet slice with positions computed from the
// orbital elements at time t, offset by the parent star's position.
func (s *Simulation) placePlanets(system *sim.StarSystem, t float64) {
	if len(system.Planets) == 0 {
		return
	}
	updated := make([]sim.Planet, len(system.Planets))
	for i, p := range system.Planets {
		phase := goldenAngle * float64(p.ID)
		offset := physics.OrbitAtTime(p.SemiMajorAxis, p.Eccentricity, p.OrbitalPeriod, t, phase)
		if parent := system.StarByID(p.ParentStarID); parent != nil {
			p.Position = parent.Position.Add(offset)
		} else {
			p.Position = offset
		}
		updated[i] = p
	}
	system.Planets = updated
}

// Status returns the read-only projection for presentation layers.
func (s *Simulation) Status() sim.Status {
	return sim.Status{
		State:       s.state,
		CurrentTime: s.currentTime,
		TimeScale:   s.timeScale,
		System:      s.system,
	}
}

// System returns the live system snapshot (nil before initialization).
func (s *Simulation) System() *sim.StarSystem { return s.system }

// CurrentTime returns the simulated time in years.
func (s *Simulation) CurrentTime() float64 { return s.currentTime }

// State returns the controller state.
func (s *Simulation) State() sim.RunState { return s.state }

// TimeScale returns the current time multiplier.
func (s *Simulation) TimeScale() float64 { return s.timeScale }

// Errors returns the recent diagnostic entries, oldest first.
func (s *Simulation) Errors() []sim.LogEntry { return s.errors.Entries() }
