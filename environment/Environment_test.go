package environment

import (
	"testing"

	ts "github.com/samuelfneumann/goalvshole/timestep"
)

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(3)

	step := ts.New(ts.Mid, -1, 4, 2)
	if limit.End(&step) {
		t.Error("step 2 should not be truncated by a limit of 3")
	}

	step = ts.New(ts.Mid, -1, 4, 3)
	if !limit.End(&step) {
		t.Error("step 3 should be truncated by a limit of 3")
	}
	if !step.Last() || step.End() != ts.Timeout {
		t.Errorf("truncated step should be Last with a Timeout, got %v", step)
	}
}

func TestStepLimitKeepsTerminalEnd(t *testing.T) {
	limit := NewStepLimit(1)

	step := ts.New(ts.Last, 10, 8, 5)
	step.SetEnd(ts.Goal)
	if !limit.End(&step) || step.End() != ts.Goal {
		t.Errorf("terminal step should keep its end type, got %v", step)
	}
}

func TestSpec(t *testing.T) {
	s := NewSpec(Observation, 0, 8, Discrete)
	if s.Len() != 9 {
		t.Errorf("want length 9, got %d", s.Len())
	}
	if !s.Contains(0) || !s.Contains(8) || s.Contains(9) || s.Contains(-1) {
		t.Error("spec bounds are not inclusive of exactly [0, 8]")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic when lower bound exceeds upper bound")
		}
	}()
	NewSpec(Action, 3, 0, Discrete)
}
