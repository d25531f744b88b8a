package analysis

import (
	"testing"

	"github.com/san-kum/starforge/internal/sim"
)

func TestEvolutionTrackSolar(t *testing.T) {
	track, err := EvolutionTrack(1.0, 1.0, 120)
	if err != nil {
		t.Fatal(err)
	}
	if len(track.Points) != 121 {
		t.Fatalf("got %d points, want samples+1", len(track.Points))
	}
	if track.Points[0].Phase != sim.Protostar || track.Points[0].Age != 0 {
		t.Error("track must start at an age-zero protostar")
	}
	if track.Final().Phase != sim.WhiteDwarf {
		t.Errorf("solar track ends as %s, want white dwarf", track.Final().Phase)
	}
	if len(track.Transitions) == 0 {
		t.Fatal("a full lifetime must cross phase boundaries")
	}
	for i, tr := range track.Transitions {
		if tr.From >= tr.To {
			t.Errorf("transition %d goes backward: %s -> %s", i, tr.From, tr.To)
		}
		if i > 0 && tr.Age <= track.Transitions[i-1].Age {
			t.Errorf("transitions out of order at %d", i)
		}
	}
}

func TestEvolutionTrackMassive(t *testing.T) {
	track, err := EvolutionTrack(30, 1.0, 200)
	if err != nil {
		t.Fatal(err)
	}
	if track.Final().Phase != sim.BlackHole {
		t.Errorf("30 solar mass track ends as %s, want black hole", track.Final().Phase)
	}
}

func TestEvolutionTrackInvalidMass(t *testing.T) {
	if _, err := EvolutionTrack(0.01, 1.0, 50); !sim.IsKind(err, sim.KindInvalidParameters) {
		t.Errorf("error = %v, want invalid parameters", err)
	}
}

func TestLogLuminosity(t *testing.T) {
	track, err := EvolutionTrack(1.0, 1.0, 50)
	if err != nil {
		t.Fatal(err)
	}
	logs := track.LogLuminosity()
	if len(logs) != len(track.Points) {
		t.Fatal("projection length mismatch")
	}
	if logs[0] > 0.1 || logs[0] < -0.1 {
		t.Errorf("solar protostar log luminosity = %g, want ~0", logs[0])
	}
}
