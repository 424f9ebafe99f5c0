package policy

import (
	"github.com/samuelfneumann/goalvshole/agent/tabular/qtable"
	"github.com/samuelfneumann/goalvshole/timestep"
)

// Greedy implements a greedy policy over a QTable. A Greedy policy
// always selects the action with the largest value, breaking ties in
// favour of the lowest action index. Greedy is always in evaluation
// mode.
type Greedy struct {
	table *qtable.QTable
}

// NewGreedy returns a new Greedy policy
func NewGreedy(table *qtable.QTable) *Greedy {
	return &Greedy{table}
}

// SelectAction selects the greedy action in the state of t
func (g *Greedy) SelectAction(t timestep.TimeStep) int {
	return g.table.BestAction(t.Observation)
}

// Eval is a no-op, Greedy policies are always in evaluation mode
func (g *Greedy) Eval() {}

// Train is a no-op, Greedy policies never explore
func (g *Greedy) Train() {}

// IsEval returns true
func (g *Greedy) IsEval() bool {
	return true
}
