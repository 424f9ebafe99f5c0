// Package gridworld implements the 2D goal-versus-hole gridworld
// environment
package gridworld

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goalvshole/environment"
	"github.com/samuelfneumann/goalvshole/timestep"
)

// GridWorld represents an n x n gridworld environment
//
// A gridworld is represented as a flattened, row-major matrix of cells,
// but in this implementation only the grid dimensions and current agent
// position are tracked. Each episode starts in the cell given by the
// task's Starter and ends upon entering a hole or a goal.
//
// Actions are discrete in (0, 1, 2, 3):
//
//	Action	Meaning
//	  0		Up
//	  1		Down
//	  2		Left
//	  3		Right
//
// GridWorld imposes no step limit of its own, episodes that should be
// truncated must be ended by the caller.
type GridWorld struct {
	*GoalVsHole
	dynamics    Dynamics
	position    int
	currentStep timestep.TimeStep
}

// New creates a new n x n gridworld with task t, returning the
// gridworld and its first timestep
func New(n int, t *GoalVsHole) (*GridWorld, timestep.TimeStep, error) {
	dynamics, err := NewDynamics(n, t)
	if err != nil {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: %v", err)
	}

	start := t.Start()
	if start < 0 || start >= n*n {
		return nil, timestep.TimeStep{}, fmt.Errorf("new: start state %d "+
			"outside of grid", start)
	}

	g := &GridWorld{GoalVsHole: t, dynamics: dynamics}
	return g, g.Reset(), nil
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.dynamics.n, g.dynamics.n
}

// Position returns the cell the agent currently occupies
func (g *GridWorld) Position() int {
	return g.position
}

// Coordinates returns the row and column of the agent
func (g *GridWorld) Coordinates() (row, col int) {
	return g.position / g.dynamics.n, g.position % g.dynamics.n
}

// Reset returns the agent to the starting cell and returns the first
// timestep of a new episode. Reset only affects the agent's position.
func (g *GridWorld) Reset() timestep.TimeStep {
	g.position = g.Start()
	g.currentStep = timestep.New(timestep.First, 0, g.position, 0)
	return g.currentStep
}

// Step takes one step in the environment
func (g *GridWorld) Step(action int) (timestep.TimeStep, bool, error) {
	a := Action(action)
	if !a.Valid() {
		return timestep.TimeStep{}, false, errors.Wrapf(
			environment.ErrInvalidAction, "step: action %d", action)
	}

	next, reward, terminal := g.dynamics.Transition(g.position, a)
	g.position = next

	stepType := timestep.Mid
	if terminal {
		stepType = timestep.Last
	}
	step := timestep.New(stepType, reward, next, g.currentStep.Number+1)
	if end, ok := g.Terminal(next); ok {
		step.SetEnd(end)
	}
	g.currentStep = step

	return step, terminal, nil
}

// CurrentTimeStep returns the last timestep produced by the GridWorld
func (g *GridWorld) CurrentTimeStep() timestep.TimeStep {
	return g.currentStep
}

// ObservationSpec returns the observation specification of the
// environment: one of the n*n cell indices
func (g *GridWorld) ObservationSpec() environment.Spec {
	n := g.dynamics.n
	return environment.NewSpec(environment.Observation, 0, n*n-1,
		environment.Discrete)
}

// ActionSpec returns the action specification of the environment
func (g *GridWorld) ActionSpec() environment.Spec {
	return environment.NewSpec(environment.Action, int(Up), int(Right),
		environment.Discrete)
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |  Task: %v  |  Bounds: (%d, %d)"
	row, col := g.Coordinates()
	return fmt.Sprintf(str, [2]int{row, col}, g.GoalVsHole, g.dynamics.n,
		g.dynamics.n)
}
