// Package policy implements tabular policies which select actions
// from a qtable.QTable
package policy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/goalvshole/agent/tabular/qtable"
	"github.com/samuelfneumann/goalvshole/timestep"
	"gonum.org/v1/gonum/stat/distuv"
)

// EGreedy implements an ε-greedy policy over a QTable. With probability
// ε an action is selected uniformly at random, otherwise the greedy
// action of the QTable is selected. In evaluation mode EGreedy always
// selects the greedy action.
type EGreedy struct {
	table   *qtable.QTable
	epsilon float64
	seed    rand.Source // Seed for random number generation
	actions distuv.Categorical
	eval    bool
}

// NewEGreedy constructs a new EGreedy policy, where e=epsilon is the
// probability with which a random action is selected. The seed fixes
// the sequence of random decisions made by the policy.
func NewEGreedy(e float64, seed uint64, table *qtable.QTable) (*EGreedy,
	error) {
	if e < 0 || e > 1 {
		return nil, fmt.Errorf("newEGreedy: epsilon %v outside of [0, 1]", e)
	}

	source := rand.NewSource(seed)

	// Uniform categorical distribution over all actions
	_, numActions := table.Dims()
	weights := make([]float64, numActions)
	for i := range weights {
		weights[i] = 1.0
	}
	actions := distuv.NewCategorical(weights, source)

	return &EGreedy{
		table:   table,
		epsilon: e,
		seed:    source,
		actions: actions,
	}, nil
}

// SelectAction selects an action from an ε-greedy policy
func (p *EGreedy) SelectAction(t timestep.TimeStep) int {
	state := t.Observation
	if p.eval {
		return p.table.BestAction(state)
	}

	explore := distuv.Bernoulli{P: p.epsilon, Src: p.seed}
	if explore.Rand() == 1.0 {
		return int(p.actions.Rand())
	}
	return p.table.BestAction(state)
}

// Epsilon returns the current exploration rate
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Decay multiplies the exploration rate by factor, which must be in
// (0, 1] so that ε stays within [0, 1] and never increases.
func (p *EGreedy) Decay(factor float64) {
	if factor <= 0 || factor > 1 {
		panic(fmt.Sprintf("decay: factor %v outside of (0, 1]", factor))
	}
	p.epsilon *= factor
}

// Eval sets the policy to evaluation mode
func (p *EGreedy) Eval() {
	p.eval = true
}

// Train sets the policy to training mode
func (p *EGreedy) Train() {
	p.eval = false
}

// IsEval returns whether the policy is in evaluation mode
func (p *EGreedy) IsEval() bool {
	return p.eval
}
