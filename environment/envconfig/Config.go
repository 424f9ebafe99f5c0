// Package envconfig provides the configuration struct for the
// goal-versus-hole gridworld. Configurations in this package are JSON,
// YAML and INI serializable and use the key names of the original
// env.ini files.
package envconfig

import (
	"fmt"

	"github.com/pkg/errors"
	env "github.com/samuelfneumann/goalvshole/environment"
	"github.com/samuelfneumann/goalvshole/environment/gridworld"
	ts "github.com/samuelfneumann/goalvshole/timestep"
)

// RenderMode determines whether and how episodes are rendered
type RenderMode string

// Available render modes. Human is accepted for compatibility with
// existing configuration files and renders exactly as GIF does.
const (
	None  RenderMode = "none"
	GIF   RenderMode = "gif"
	Human RenderMode = "human"
)

// Renders returns whether frames should be drawn in mode m. The empty
// RenderMode is equivalent to None.
func (m RenderMode) Renders() bool {
	return m == GIF || m == Human
}

// Valid returns whether m is a known RenderMode
func (m RenderMode) Valid() bool {
	switch m {
	case "", None, GIF, Human:
		return true
	}
	return false
}

// DefaultCellSize is the side length of a rendered cell in pixels
const DefaultCellSize = 100

// Config describes a single n x n goal-versus-hole gridworld
type Config struct {
	GridSize   int        `json:"grid_size" yaml:"grid_size" ini:"grid_size"`
	CellSize   int        `json:"cell_size" yaml:"cell_size" ini:"cell_size"`
	Holes      []int      `json:"holes" yaml:"holes" ini:"holes" delim:","`
	Goals      []int      `json:"goals" yaml:"goals" ini:"goals" delim:","`
	RewardStep float64    `json:"reward_non_terminal" yaml:"reward_non_terminal" ini:"reward_non_terminal"`
	RewardHole float64    `json:"reward_hole" yaml:"reward_hole" ini:"reward_hole"`
	RewardGoal float64    `json:"reward_goal" yaml:"reward_goal" ini:"reward_goal"`
	RenderMode RenderMode `json:"render_mode" yaml:"render_mode" ini:"render_mode"`
}

// Validate ensures that the Config describes a constructible gridworld.
// Every returned error wraps environment.ErrConfiguration.
func (c Config) Validate() error {
	if c.GridSize < 1 {
		return errors.Wrapf(env.ErrConfiguration,
			"validate: grid_size must be positive, got %d", c.GridSize)
	}
	if c.CellSize < 0 {
		return errors.Wrapf(env.ErrConfiguration,
			"validate: cell_size must not be negative, got %d", c.CellSize)
	}
	if !c.RenderMode.Valid() {
		return errors.Wrapf(env.ErrConfiguration,
			"validate: unknown render_mode %q", c.RenderMode)
	}

	states := c.GridSize * c.GridSize
	holes := make(map[int]bool, len(c.Holes))
	for _, h := range c.Holes {
		if h < 0 || h >= states {
			return errors.Wrapf(env.ErrConfiguration,
				"validate: hole %d outside of [0, %d)", h, states)
		}
		holes[h] = true
	}
	for _, g := range c.Goals {
		if g < 0 || g >= states {
			return errors.Wrapf(env.ErrConfiguration,
				"validate: goal %d outside of [0, %d)", g, states)
		}
		if holes[g] {
			return errors.Wrapf(env.ErrConfiguration,
				"validate: cell %d is both a hole and a goal", g)
		}
	}
	return nil
}

// Rewards returns the reward schedule of the Config
func (c Config) Rewards() gridworld.Rewards {
	return gridworld.Rewards{
		Step: c.RewardStep,
		Hole: c.RewardHole,
		Goal: c.RewardGoal,
	}
}

// Cell returns the rendered cell size, falling back to DefaultCellSize
// when none is set
func (c Config) Cell() int {
	if c.CellSize == 0 {
		return DefaultCellSize
	}
	return c.CellSize
}

// Task returns the goal-versus-hole task described by the Config.
// Episodes always start in the top-left cell.
func (c Config) Task() (*gridworld.GoalVsHole, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("task: %w", err)
	}

	start, err := gridworld.NewSingleStart(gridworld.StartState, c.GridSize)
	if err != nil {
		return nil, fmt.Errorf("task: %v", err)
	}
	return gridworld.NewGoalVsHole(start, c.Holes, c.Goals, c.GridSize,
		c.Rewards())
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment.
func (c Config) Create() (*gridworld.GridWorld, ts.TimeStep, error) {
	task, err := c.Task()
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}
	return gridworld.New(c.GridSize, task)
}
