package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/goalvshole/environment"
	"github.com/samuelfneumann/goalvshole/timestep"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Rewards is the reward schedule of a GoalVsHole task
type Rewards struct {
	Step float64 // reward for entering a non-terminal cell
	Hole float64 // reward for entering a hole
	Goal float64 // reward for entering a goal
}

// GoalVsHole represents the task of reaching one of several goal cells
// in a GridWorld without falling into any hole cell. Both kinds of cells
// are terminal.
type GoalVsHole struct {
	environment.Starter
	holes   *mat.VecDense // one-hot encoding of hole states
	goals   *mat.VecDense // one-hot encoding of goal states
	n       int           // side length of the grid
	rewards Rewards
}

// NewGoalVsHole creates and returns a new GoalVsHole task on an n x n
// grid. Holes and goals are given as row-major cell indices.
//
// Overlapping holes and goals are not rejected here; a cell that is
// both is treated as a hole.
func NewGoalVsHole(s environment.Starter, holes, goals []int, n int,
	r Rewards) (*GoalVsHole, error) {
	if n < 1 {
		return &GoalVsHole{}, fmt.Errorf("newGoalVsHole: grid size %d < 1", n)
	}

	holeVec, err := oneHot(holes, n)
	if err != nil {
		return &GoalVsHole{}, fmt.Errorf("newGoalVsHole: holes: %v", err)
	}
	goalVec, err := oneHot(goals, n)
	if err != nil {
		return &GoalVsHole{}, fmt.Errorf("newGoalVsHole: goals: %v", err)
	}

	return &GoalVsHole{s, holeVec, goalVec, n, r}, nil
}

// oneHot encodes cells as a vector of length n*n with a 1.0 at each
// cell index
func oneHot(cells []int, n int) (*mat.VecDense, error) {
	vec := mat.NewVecDense(n*n, nil)
	for i, cell := range cells {
		if cell < 0 || cell >= n*n {
			return nil, fmt.Errorf("cell[%d] = %d outside of [0, %d]", i,
				cell, n*n-1)
		}
		vec.SetVec(cell, 1.0)
	}
	return vec, nil
}

// IsHole returns whether state is a hole
func (g *GoalVsHole) IsHole(state int) bool {
	return g.holes.AtVec(state) != 0.0
}

// IsGoal returns whether state is a goal
func (g *GoalVsHole) IsGoal(state int) bool {
	return g.goals.AtVec(state) != 0.0
}

// Terminal returns how an episode ends upon entering state and whether
// state is terminal at all. Holes take precedence over goals.
func (g *GoalVsHole) Terminal(state int) (timestep.EndType, bool) {
	if g.IsHole(state) {
		return timestep.Hole, true
	} else if g.IsGoal(state) {
		return timestep.Goal, true
	}
	return timestep.Unended, false
}

// GetReward returns the reward for a transition into state next
func (g *GoalVsHole) GetReward(next int) float64 {
	if g.IsHole(next) {
		return g.rewards.Hole
	} else if g.IsGoal(next) {
		return g.rewards.Goal
	}
	return g.rewards.Step
}

// Holes returns the hole cells in increasing order
func (g *GoalVsHole) Holes() []int {
	return cellsOf(g.holes)
}

// Goals returns the goal cells in increasing order
func (g *GoalVsHole) Goals() []int {
	return cellsOf(g.goals)
}

// Rewards returns the reward schedule of the task
func (g *GoalVsHole) Rewards() Rewards {
	return g.rewards
}

func cellsOf(v *mat.VecDense) []int {
	var cells []int
	for i := 0; i < v.Len(); i++ {
		if v.AtVec(i) != 0.0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// Min returns the minimum reward attainable in the Task
func (g *GoalVsHole) Min() float64 {
	rewards := []float64{g.rewards.Step, g.rewards.Hole, g.rewards.Goal}
	return floats.Min(rewards)
}

// Max returns the maximum reward attainable in the Task
func (g *GoalVsHole) Max() float64 {
	rewards := []float64{g.rewards.Step, g.rewards.Hole, g.rewards.Goal}
	return floats.Max(rewards)
}

// String returns the Task as a string
func (g *GoalVsHole) String() string {
	return fmt.Sprintf("GoalVsHole | Holes: %v  |  Goals: %v  |  "+
		"Rewards: %+v", g.Holes(), g.Goals(), g.rewards)
}
