// Package qlearning implements the tabular Q-Learning algorithm with an
// ε-greedy behaviour policy.
package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/goalvshole/agent/tabular/policy"
	"github.com/samuelfneumann/goalvshole/agent/tabular/qtable"
	"github.com/samuelfneumann/goalvshole/environment"
)

// QLearning implements the Q-Learning algorithm. Actions are selected
// with an ε-greedy policy whose exploration rate decays geometrically
// at the end of every episode.
type QLearning struct {
	*QLearner
	*policy.EGreedy
	table *qtable.QTable
	decay float64
}

// New creates a new QLearning struct with all action values
// initialized to zero. The number of states and actions is taken from
// the environment's specifications.
func New(env environment.Environment, c Config, seed uint64) (*QLearning,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	obsSpec, actSpec := env.ObservationSpec(), env.ActionSpec()
	if obsSpec.Cardinality != environment.Discrete ||
		actSpec.Cardinality != environment.Discrete {
		return nil, fmt.Errorf("new: tabular Q-Learning requires discrete " +
			"states and actions")
	}

	table, err := qtable.New(obsSpec.Len(), actSpec.Len())
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	behaviour, err := policy.NewEGreedy(c.Epsilon, seed, table)
	if err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	learner := NewQLearner(table, c.Alpha, c.Gamma)

	return &QLearning{
		QLearner: learner,
		EGreedy:  behaviour,
		table:    table,
		decay:    c.EpsilonDecay,
	}, nil
}

// EndEpisode decays the exploration rate of the behaviour policy. It
// should be called exactly once per completed episode.
func (q *QLearning) EndEpisode() {
	q.EGreedy.Decay(q.decay)
}

// Table returns the action values learned by the agent
func (q *QLearning) Table() *qtable.QTable {
	return q.table
}
