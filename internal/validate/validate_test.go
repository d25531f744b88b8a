package validate

import (
	"strings"
	"testing"

	"github.com/san-kum/starforge/internal/sim"
)

func validCloud() sim.CloudParameters {
	return sim.CloudParameters{Mass: 1.0, Metallicity: 1.0, AngularMomentum: 1e42}
}

func TestCloudAcceptsValid(t *testing.T) {
	if err := Cloud(validCloud()); err != nil {
		t.Errorf("valid cloud rejected: %v", err)
	}
	// Optional fields set to legal values.
	p := validCloud()
	p.Temperature = 25
	p.Radius = 0.1
	p.TurbulenceVelocity = 1.5
	p.MagneticField = 30
	if err := Cloud(p); err != nil {
		t.Errorf("valid optional fields rejected: %v", err)
	}
}

func TestCloudRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*sim.CloudParameters)
	}{
		{"zero mass", func(p *sim.CloudParameters) { p.Mass = 0 }},
		{"negative mass", func(p *sim.CloudParameters) { p.Mass = -1 }},
		{"huge mass", func(p *sim.CloudParameters) { p.Mass = 1e7 }},
		{"zero metallicity", func(p *sim.CloudParameters) { p.Metallicity = 0 }},
		{"missing angular momentum", func(p *sim.CloudParameters) { p.AngularMomentum = 0 }},
		{"sub-CMB temperature", func(p *sim.CloudParameters) { p.Temperature = 1 }},
		{"negative radius", func(p *sim.CloudParameters) { p.Radius = -0.1 }},
		{"hypersonic turbulence", func(p *sim.CloudParameters) { p.TurbulenceVelocity = 100 }},
		{"negative field", func(p *sim.CloudParameters) { p.MagneticField = -5 }},
	}
	for _, tt := range tests {
		p := validCloud()
		tt.mutate(&p)
		err := Cloud(p)
		if !sim.IsKind(err, sim.KindInvalidParameters) {
			t.Errorf("%s: error = %v, want invalid parameters", tt.name, err)
		}
	}
}

func TestCloudCollectsAllProblems(t *testing.T) {
	err := Cloud(sim.CloudParameters{Mass: -1, Metallicity: 100, AngularMomentum: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"mass", "metallicity", "angular momentum"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q violation", msg, want)
		}
	}
}

func TestCloudWarnings(t *testing.T) {
	if w := CloudWarnings(validCloud()); len(w) != 0 {
		t.Errorf("typical cloud warned: %v", w)
	}
	p := validCloud()
	p.Mass = 1e5
	p.Metallicity = 0.01
	if w := CloudWarnings(p); len(w) != 2 {
		t.Errorf("expected 2 warnings, got %v", w)
	}
}

func TestStellarMass(t *testing.T) {
	for _, m := range []float64{0.08, 1, 150} {
		if err := StellarMass(m); err != nil {
			t.Errorf("mass %g rejected: %v", m, err)
		}
	}
	for _, m := range []float64{0, 0.05, 151, -1} {
		if err := StellarMass(m); !sim.IsKind(err, sim.KindInvalidParameters) {
			t.Errorf("mass %g: error = %v, want invalid parameters", m, err)
		}
	}
}

func TestOrbitSpacing(t *testing.T) {
	wide := []sim.Planet{
		{Name: "a", Mass: 1, SemiMajorAxis: 1},
		{Name: "b", Mass: 1, SemiMajorAxis: 2},
	}
	if err := OrbitSpacing(wide, 1); err != nil {
		t.Errorf("well-separated planets flagged: %v", err)
	}

	crowded := []sim.Planet{
		{Name: "a", Mass: 300, SemiMajorAxis: 1},
		{Name: "b", Mass: 300, SemiMajorAxis: 1.05},
	}
	if err := OrbitSpacing(crowded, 1); !sim.IsKind(err, sim.KindUnstableSystem) {
		t.Errorf("crowded giants: error = %v, want unstable system", err)
	}

	if err := OrbitSpacing(nil, 1); err != nil {
		t.Errorf("empty set flagged: %v", err)
	}
}
