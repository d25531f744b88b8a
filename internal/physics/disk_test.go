package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/starforge/internal/sim"
)

func TestDiskMass(t *testing.T) {
	if m := DiskMass(1, 1); math.Abs(m-0.01) > 1e-12 {
		t.Errorf("solar disk mass = %g, want 0.01", m)
	}
	if DiskMass(1, 0.1) >= DiskMass(1, 1) {
		t.Error("metal-poor disk should be lighter")
	}
}

func TestDiskOuterRadiusClamp(t *testing.T) {
	if r := DiskOuterRadius(0.05, 0); r != MinOuterRadius {
		t.Errorf("tiny star disk = %g, want clamped to %g", r, MinOuterRadius)
	}
	if r := DiskOuterRadius(100, 0); r != MaxOuterRadius {
		t.Errorf("huge star disk = %g, want clamped to %g", r, MaxOuterRadius)
	}
}

func TestDiskOuterRadiusBraking(t *testing.T) {
	free := DiskOuterRadius(1, 0)
	braked := DiskOuterRadius(1, 80)
	if braked >= free {
		t.Errorf("braking should shrink the disk: %g -> %g", free, braked)
	}
	if braked < MinOuterRadius || braked > MaxOuterRadius {
		t.Errorf("braked radius %g outside clamp", braked)
	}
	// Extreme fields still clamp at the floor.
	if r := DiskOuterRadius(1, 1e4); r != MinOuterRadius {
		t.Errorf("extreme braking = %g, want %g", r, MinOuterRadius)
	}
}

func TestSnowLine(t *testing.T) {
	if s := SnowLine(1); math.Abs(s-2.7) > 1e-9 {
		t.Errorf("solar snow line = %g, want 2.7", s)
	}
	if SnowLine(4) <= SnowLine(1) {
		t.Error("brighter star should push the snow line out")
	}
}

func TestClassifyComposition(t *testing.T) {
	snow := 2.7
	tests := []struct {
		distance, metallicity float64
		want                  sim.Composition
	}{
		{0.5, 1.0, sim.Rocky},
		{2.6, 0.1, sim.Rocky},
		{3.0, 1.0, sim.GasGiant},
		{3.0, 0.3, sim.IceGiant},
		{20, 1.0, sim.IceGiant},
	}
	for _, tt := range tests {
		if got := ClassifyComposition(tt.distance, snow, tt.metallicity); got != tt.want {
			t.Errorf("classify(d=%g, z=%g) = %s, want %s", tt.distance, tt.metallicity, got, tt.want)
		}
	}
}

func TestPlanetMassByComposition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		rocky := PlanetMass(sim.Rocky, 0.01, 1, 1, rng)
		ice := PlanetMass(sim.IceGiant, 0.01, 10, 1, rng)
		gas := PlanetMass(sim.GasGiant, 0.01, 5, 1, rng)
		if rocky <= 0 || ice <= 0 || gas <= 0 {
			t.Fatal("planet masses must be positive")
		}
		if gas <= ice {
			t.Errorf("gas giant (%g) should outweigh ice giant (%g)", gas, ice)
		}
	}
}

func TestPlanetRadius(t *testing.T) {
	if r := PlanetRadius(1, sim.Rocky); math.Abs(r-1) > 1e-9 {
		t.Errorf("Earth radius = %g", r)
	}
	// Neptune-ish.
	if r := PlanetRadius(17, sim.IceGiant); r < 3 || r > 5 {
		t.Errorf("Neptune analog radius = %g, want ~3.9", r)
	}
	// Jupiter-ish, nearly mass-independent.
	if r := PlanetRadius(318, sim.GasGiant); r < 10 || r > 12 {
		t.Errorf("Jupiter analog radius = %g, want ~11", r)
	}
}

func TestHabitableZone(t *testing.T) {
	inner, outer := HabitableZone(1)
	if inner >= outer {
		t.Error("habitable zone inverted")
	}
	if inner < 0.9 || outer > 1.5 {
		t.Errorf("solar habitable zone [%g, %g] implausible", inner, outer)
	}
}
