// Package environment outlines the interfaces and structs needed to
// implement concrete tabular environments
package environment

import (
	ts "github.com/samuelfneumann/goalvshole/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter interface {
	Start() int
}

// Ender determines when an episode should end. If the episode should
// end, End() sets the StepType of the argument TimeStep to
// timestep.Last and records how the episode ended.
type Ender interface {
	End(*ts.TimeStep) bool
}

// Task implements the reward scheme for transitions in some environment
type Task interface {
	Starter

	// GetReward returns the reward for a transition into state next
	GetReward(next int) float64

	// Terminal returns how an episode ends when state is entered, and
	// whether state ends the episode at all
	Terminal(state int) (ts.EndType, bool)
}

// Environment implements a simulated environment with discrete states
// and discrete actions, which includes a Task to complete.
//
// Environments are not safe for concurrent use: Step mutates the
// position of the agent.
type Environment interface {
	Task

	// Reset returns the agent to the starting state and returns the
	// first TimeStep of an episode
	Reset() ts.TimeStep

	// Step takes an action in the environment, returning the next
	// TimeStep and whether or not the episode has reached a terminal
	// state. An invalid action results in an error wrapping
	// ErrInvalidAction and leaves the environment unchanged.
	Step(action int) (ts.TimeStep, bool, error)

	// CurrentTimeStep returns the most recent TimeStep
	CurrentTimeStep() ts.TimeStep

	ObservationSpec() Spec
	ActionSpec() Spec
}
