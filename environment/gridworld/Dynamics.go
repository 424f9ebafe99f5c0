package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/goalvshole/utils/intutils"
)

// Dynamics is the deterministic transition function of an n x n
// GridWorld. States are row-major cell indices in [0, n*n).
//
// Moves which would leave the grid are clipped: the state is unchanged
// and the ordinary step reward is given.
type Dynamics struct {
	n    int
	task *GoalVsHole
}

// NewDynamics returns the transition function of an n x n grid with
// terminal cells and rewards given by task
func NewDynamics(n int, task *GoalVsHole) (Dynamics, error) {
	if n < 1 {
		return Dynamics{}, fmt.Errorf("newDynamics: grid size %d < 1", n)
	}
	if task.n != n {
		return Dynamics{}, fmt.Errorf("newDynamics: task is for grid size "+
			"%d, not %d", task.n, n)
	}
	return Dynamics{n, task}, nil
}

// Size returns the side length of the grid
func (d Dynamics) Size() int {
	return d.n
}

// Move returns the state reached by taking action a in state, ignoring
// rewards and terminal cells. Invalid actions leave state unchanged.
func (d Dynamics) Move(state int, a Action) int {
	row, col := state/d.n, state%d.n

	switch a {
	case Up:
		row--
	case Down:
		row++
	case Left:
		col--
	case Right:
		col++
	}

	row = intutils.Clip(row, 0, d.n-1)
	col = intutils.Clip(col, 0, d.n-1)
	return row*d.n + col
}

// Transition returns the next state, reward, and terminal flag of
// taking action a in state. The reward and terminal flag are determined
// by the resulting state only.
func (d Dynamics) Transition(state int, a Action) (int, float64, bool) {
	next := d.Move(state, a)
	_, terminal := d.task.Terminal(next)
	return next, d.task.GetReward(next), terminal
}
