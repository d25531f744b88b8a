// Package metrics aggregates per-update observations of a star system into
// run-level summary values for the headless driver.
package metrics

import (
	"math"

	"github.com/san-kum/starforge/internal/sim"
)

// Observer samples the system after each update and reduces the run to a
// single summary value.
type Observer interface {
	Name() string
	Observe(system *sim.StarSystem, t float64)
	Value() float64
	Reset()
}

// MeanLuminosity is the time-averaged total luminosity of the system.
type MeanLuminosity struct {
	total   float64
	samples int
}

func NewMeanLuminosity() *MeanLuminosity { return &MeanLuminosity{} }

func (m *MeanLuminosity) Name() string { return "mean_luminosity" }

func (m *MeanLuminosity) Observe(system *sim.StarSystem, t float64) {
	if system == nil {
		return
	}
	for _, s := range system.Stars {
		m.total += s.Luminosity
	}
	m.samples++
}

func (m *MeanLuminosity) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanLuminosity) Reset() {
	m.total = 0
	m.samples = 0
}

// LuminosityDrift tracks the largest relative excursion of the system's
// total luminosity from its initial value. Giant-phase flare-ups show up
// here as drifts of several orders of magnitude.
type LuminosityDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewLuminosityDrift() *LuminosityDrift { return &LuminosityDrift{} }

func (d *LuminosityDrift) Name() string { return "luminosity_drift" }

func (d *LuminosityDrift) Observe(system *sim.StarSystem, t float64) {
	if system == nil {
		return
	}
	total := 0.0
	for _, s := range system.Stars {
		total += s.Luminosity
	}
	if d.samples == 0 {
		d.initial = total
	}
	d.samples++
	if d.initial != 0 {
		drift := math.Abs(total-d.initial) / math.Abs(d.initial)
		d.maxDrift = math.Max(d.maxDrift, drift)
	}
}

func (d *LuminosityDrift) Value() float64 { return d.maxDrift }

func (d *LuminosityDrift) Reset() {
	d.initial = 0
	d.maxDrift = 0
	d.samples = 0
}

// RemnantCount is the current number of stars in a terminal phase.
type RemnantCount struct {
	count float64
}

func NewRemnantCount() *RemnantCount { return &RemnantCount{} }

func (r *RemnantCount) Name() string { return "remnants" }

func (r *RemnantCount) Observe(system *sim.StarSystem, t float64) {
	if system == nil {
		return
	}
	n := 0.0
	for _, s := range system.Stars {
		if s.Phase.Terminal() {
			n++
		}
	}
	r.count = n
}

func (r *RemnantCount) Value() float64 { return r.count }

func (r *RemnantCount) Reset() { r.count = 0 }
