package qlearning

import (
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goalvshole/agent/tabular/qtable"
	"github.com/samuelfneumann/goalvshole/timestep"
)

// ErrNoTransition is returned by Step when no transition has been
// observed since the last update
var ErrNoTransition = errors.New("no transition observed since last update")

// QLearner implements the update functionality for the tabular
// Q-Learning algorithm.
type QLearner struct {
	table        *qtable.QTable
	step         timestep.TimeStep
	action       int
	nextStep     timestep.TimeStep
	pending      bool
	learningRate float64
	discount     float64
}

// NewQLearner creates a new QLearner struct
//
// table holds the action values to learn
func NewQLearner(table *qtable.QTable, learningRate,
	discount float64) *QLearner {
	return &QLearner{
		table:        table,
		learningRate: learningRate,
		discount:     discount,
	}
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearner) ObserveFirst(t timestep.TimeStep) error {
	if !t.First() {
		slog.Warn("observeFirst: should only be called on the first timestep",
			"step", t.Number)
	}
	q.step = timestep.TimeStep{}
	q.nextStep = t
	q.pending = false
	return nil
}

// Observe observes and records any timestep other than the first timestep
func (q *QLearner) Observe(action int, nextStep timestep.TimeStep) error {
	states, actions := q.table.Dims()
	if action < 0 || action >= actions {
		return fmt.Errorf("observe: action %d outside of [0, %d)", action,
			actions)
	}
	if nextStep.Observation < 0 || nextStep.Observation >= states {
		return fmt.Errorf("observe: state %d outside of [0, %d)",
			nextStep.Observation, states)
	}

	q.step = q.nextStep
	q.action = action
	q.nextStep = nextStep
	q.pending = true
	return nil
}

// Step updates the action values using the most recently observed
// transition. Each observed transition is applied at most once.
func (q *QLearner) Step() error {
	if !q.pending {
		return fmt.Errorf("step: %w", ErrNoTransition)
	}
	q.pending = false
	q.Update(q.step.Observation, q.action, q.nextStep.Reward,
		q.nextStep.Observation)
	return nil
}

// Update performs a single one-step Q-learning update for the
// transition (state, action, reward, next):
//
//	Q(s, a) ← Q(s, a) + α [r + γ max_a' Q(s', a') - Q(s, a)]
//
// The target bootstraps from the next state even when that state is
// terminal or equal to state.
func (q *QLearner) Update(state, action int, reward float64, next int) {
	target := reward + q.discount*q.table.Max(next)
	current := q.table.Value(state, action)
	q.table.Update(state, action, current+q.learningRate*(target-current))
}

// TdError returns the TD error of the transition (state, action,
// reward, next) under the current action values
func (q *QLearner) TdError(state, action int, reward float64,
	next int) float64 {
	target := reward + q.discount*q.table.Max(next)
	return target - q.table.Value(state, action)
}
