package timestep

import "testing"

func TestTimeStep(t *testing.T) {
	step := New(First, 0, 0, 0)
	if !step.First() || step.Mid() || step.Last() {
		t.Errorf("unexpected step type %v", step.StepType)
	}
	if step.End() != Unended {
		t.Errorf("new timestep should be unended, got %v", step.End())
	}

	step.StepType = Last
	step.SetEnd(Hole)
	if !step.Last() || step.End() != Hole {
		t.Errorf("want last step ending in a hole, got %v", step)
	}
}

func TestEndTypeString(t *testing.T) {
	names := map[EndType]string{
		Unended: "Unended",
		Hole:    "Hole",
		Goal:    "Goal",
		Timeout: "Timeout",
	}
	for e, want := range names {
		if e.String() != want {
			t.Errorf("want %v, got %v", want, e.String())
		}
	}
}
