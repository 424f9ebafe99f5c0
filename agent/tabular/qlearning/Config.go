package qlearning

import (
	"github.com/pkg/errors"
	"github.com/samuelfneumann/goalvshole/agent"
	"github.com/samuelfneumann/goalvshole/environment"
)

// Config represents a configuration for the QLearning agent
type Config struct {
	Alpha        float64 `json:"alpha" yaml:"alpha" ini:"alpha"`                         // learning rate
	Gamma        float64 `json:"gamma" yaml:"gamma" ini:"gamma"`                         // discount factor
	Epsilon      float64 `json:"epsilon" yaml:"epsilon" ini:"epsilon"`                   // initial ε of the behaviour policy
	EpsilonDecay float64 `json:"epsilon_decay" yaml:"epsilon_decay" ini:"epsilon_decay"` // multiplicative decay of ε per episode
}

// CreateAgent creates the agent from the Config. Agent action values
// are always initialized to zero.
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Agent, error) {
	q, err := New(env, c, seed)
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*QLearning)
	return ok
}

// Validate ensures that the Config is valid. Every hyperparameter must
// lie in (0, 1].
func (c Config) Validate() error {
	params := []struct {
		name  string
		value float64
	}{
		{"alpha", c.Alpha},
		{"gamma", c.Gamma},
		{"epsilon", c.Epsilon},
		{"epsilon_decay", c.EpsilonDecay},
	}

	for _, p := range params {
		if p.value <= 0 || p.value > 1 {
			return errors.Wrapf(environment.ErrConfiguration,
				"validate: %v = %v outside of (0, 1]", p.name, p.value)
		}
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.EGreedyQLearningTabular
}
