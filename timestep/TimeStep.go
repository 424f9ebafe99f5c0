// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType denotes how an episode ended. Only the last TimeStep of an
// episode carries an EndType other than Unended.
type EndType int

const (
	Unended EndType = iota
	Hole            // the agent fell into a hole cell
	Goal            // the agent reached a goal cell
	Timeout         // the episode was truncated by a step limit
)

func (e EndType) String() string {
	switch e {
	case Hole:
		return "Hole"
	case Goal:
		return "Goal"
	case Timeout:
		return "Timeout"
	default:
		return "Unended"
	}
}

// TimeStep packages together a single timestep in an environment.
// Observation is the index of the grid cell the agent occupies after
// the step, and Number is the index of the step within its episode.
type TimeStep struct {
	StepType    StepType
	Reward      float64
	Observation int
	Number      int
	end         EndType
}

// New returns a new TimeStep
func New(t StepType, r float64, o int, n int) TimeStep {
	return TimeStep{StepType: t, Reward: r, Observation: o, Number: n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd sets the way in which the episode ended
func (t *TimeStep) SetEnd(e EndType) {
	t.end = e
}

// End returns the way in which the episode ended
func (t *TimeStep) End() EndType {
	return t.end
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  State: %d  |  " +
		"Step Number:  %v  |  End: %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Observation, t.Number,
		t.end)
}
