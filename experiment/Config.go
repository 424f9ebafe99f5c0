package experiment

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goalvshole/agent"
	"github.com/samuelfneumann/goalvshole/agent/tabular/qlearning"
	"github.com/samuelfneumann/goalvshole/environment"
	"github.com/samuelfneumann/goalvshole/environment/envconfig"
	"github.com/samuelfneumann/goalvshole/experiment/tracker"
)

// Default values of optional configuration keys
const (
	DefaultMaxEpisodeSteps = 100
	DefaultSeed            = 1
)

// Config represents a configuration of an experiment.
type Config struct {
	EnvConf         envconfig.Config `json:"env"`
	AgentConf       qlearning.Config `json:"agent"`
	MaxEpisodes     int              `json:"total_episode_count"`
	MaxWins         int              `json:"max_wins"`
	MaxEpisodeSteps int              `json:"max_episode_steps"`
	MaxGifs         int              `json:"max_gifs"`
	Seed            uint64           `json:"seed"`
}

// Validate ensures that every part of the Config is valid. Every
// returned error wraps environment.ErrConfiguration.
func (c Config) Validate() error {
	if err := c.EnvConf.Validate(); err != nil {
		return err
	}
	if err := c.AgentConf.Validate(); err != nil {
		return err
	}

	counts := []struct {
		name  string
		value int
		min   int
	}{
		{"total_episode_count", c.MaxEpisodes, 1},
		{"max_wins", c.MaxWins, 1},
		{"max_episode_steps", c.MaxEpisodeSteps, 1},
		{"max_gifs", c.MaxGifs, 0},
	}
	for _, count := range counts {
		if count.value < count.min {
			return errors.Wrapf(environment.ErrConfiguration,
				"validate: %v must be at least %d, got %d", count.name,
				count.min, count.value)
		}
	}
	return nil
}

// Limits returns the experiment limits described by the Config
func (c Config) Limits() Limits {
	return Limits{
		MaxEpisodes:     c.MaxEpisodes,
		MaxWins:         c.MaxWins,
		MaxEpisodeSteps: c.MaxEpisodeSteps,
	}
}

// CreateExp validates the Config and creates the environment, the
// agent and the online experiment that trains the agent on the
// environment.
func (c Config) CreateExp(t ...tracker.Tracker) (*Online, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("createExp: %w", err)
	}

	env, _, err := c.EnvConf.Create()
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create environment: %w",
			err)
	}

	var conf agent.Config = c.AgentConf
	a, err := conf.CreateAgent(env, c.Seed)
	if err != nil {
		return nil, fmt.Errorf("createExp: could not create agent: %w", err)
	}
	tabular, ok := a.(agent.Tabular)
	if !ok {
		return nil, fmt.Errorf("createExp: agent %v is not tabular",
			conf.Type())
	}

	return NewOnline(env, tabular, c.Limits(), t...)
}
