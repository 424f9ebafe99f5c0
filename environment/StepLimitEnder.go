package environment

import ts "github.com/samuelfneumann/goalvshole/timestep"

// StepLimit implements the Ender interface to end episodes at specific
// timestep limits. Environments never impose a StepLimit themselves;
// it is applied by whoever drives the episode.
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be truncated, End() will modify the timestep so that its
// StepType field is timestep.Last and its end type is
// timestep.Timeout. A timestep that is already last is left untouched.
func (s StepLimit) End(t *ts.TimeStep) bool {
	if t.Last() {
		return true
	}
	if t.Number >= s.episodeSteps {
		t.StepType = ts.Last
		t.SetEnd(ts.Timeout)
		return true
	}
	return false
}
