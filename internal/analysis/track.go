// Package analysis provides offline characterization of stellar evolution:
// full-lifetime tracks sampled at fixed resolution and the phase transitions
// along them. It drives the track plotting command and is independent of the
// live simulation loop.
package analysis

import (
	"math"

	"github.com/san-kum/starforge/internal/evolve"
	"github.com/san-kum/starforge/internal/sim"
)

// TrackPoint is one sample along an evolutionary track.
type TrackPoint struct {
	Age         float64
	Luminosity  float64
	Radius      float64
	Temperature float64
	Phase       sim.EvolutionPhase
}

// Transition marks a phase change along a track.
type Transition struct {
	Age  float64
	From sim.EvolutionPhase
	To   sim.EvolutionPhase
}

// Track is a sampled evolutionary history of a single star.
type Track struct {
	Mass        float64
	Metallicity float64
	Lifetime    float64
	Points      []TrackPoint
	Transitions []Transition
}

// overshoot extends sampling past the nominal lifetime so the track reaches
// the remnant phase.
const overshoot = 1.05

// EvolutionTrack evolves a fresh star of the given mass and metallicity over
// its whole life and returns the sampled history.
func EvolutionTrack(mass, metallicity float64, samples int) (*Track, error) {
	if samples < 2 {
		samples = 2
	}
	star, err := evolve.NewStar(1, mass, metallicity, "track")
	if err != nil {
		return nil, err
	}

	track := &Track{
		Mass:        star.Mass,
		Metallicity: star.Metallicity,
		Lifetime:    star.Lifetime,
		Points:      make([]TrackPoint, 0, samples+1),
	}
	track.Points = append(track.Points, point(star))

	dt := overshoot * star.Lifetime / float64(samples)
	for i := 0; i < samples; i++ {
		prev := star.Phase
		star, err = evolve.Evolve(star, dt)
		if err != nil {
			return nil, err
		}
		track.Points = append(track.Points, point(star))
		if star.Phase != prev {
			track.Transitions = append(track.Transitions, Transition{
				Age: star.Age, From: prev, To: star.Phase,
			})
		}
	}
	return track, nil
}

func point(star sim.Star) TrackPoint {
	return TrackPoint{
		Age:         star.Age,
		Luminosity:  star.Luminosity,
		Radius:      star.Radius,
		Temperature: star.Temperature,
		Phase:       star.Phase,
	}
}

// LogLuminosity projects the track onto log10(L/Lsun) for plotting.
func (t *Track) LogLuminosity() []float64 {
	out := make([]float64, len(t.Points))
	for i, p := range t.Points {
		out[i] = math.Log10(p.Luminosity)
	}
	return out
}

// Final returns the last sampled point.
func (t *Track) Final() TrackPoint {
	return t.Points[len(t.Points)-1]
}
