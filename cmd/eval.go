package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goalvshole/agent/tabular/policy"
	"github.com/samuelfneumann/goalvshole/agent/tabular/qtable"
	"github.com/samuelfneumann/goalvshole/environment"
	"github.com/samuelfneumann/goalvshole/environment/gridworld"
	"github.com/samuelfneumann/goalvshole/experiment"
	"github.com/samuelfneumann/goalvshole/render"
	"github.com/spf13/cobra"
)

type evalOptions struct {
	config string
	table  string
	frames string
}

// EvalCommand returns the command which rolls out the greedy policy of
// a saved Q-table
func EvalCommand() *cobra.Command {
	opts := &evalOptions{}

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Roll out the greedy policy of a trained Q-table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eval(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.config, "config", "c", "configs/env.ini",
		"configuration file the table was trained with")
	f.StringVarP(&opts.table, "table", "t", filepath.Join("out", TableFile),
		"saved Q-table")
	f.StringVar(&opts.frames, "frames", "",
		"save a PNG of every step of the rollout into this directory")
	return cmd
}

func eval(cmd *cobra.Command, opts *evalOptions) error {
	c, err := experiment.Load(opts.config)
	if err != nil {
		return err
	}
	g, _, err := c.EnvConf.Create()
	if err != nil {
		return err
	}

	table, err := qtable.Load(opts.table)
	if err != nil {
		return err
	}
	states, actions := table.Dims()
	if states != g.ObservationSpec().Len() || actions != g.ActionSpec().Len() {
		return errors.Wrapf(environment.ErrConfiguration,
			"eval: table of shape (%d, %d) does not fit a %d x %d grid",
			states, actions, c.EnvConf.GridSize, c.EnvConf.GridSize)
	}

	outcome, path, err := experiment.Rollout(g, policy.NewGreedy(table),
		c.MaxEpisodeSteps)
	if err != nil {
		return err
	}

	if opts.frames != "" {
		if err := saveFrames(opts.frames, c, g, path); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Path: %v\n", formatPath(path, c.EnvConf.GridSize))
	_, err = fmt.Fprintf(out, "Outcome: %v after %d steps, return %v\n",
		outcome.End, outcome.Steps, outcome.Return)
	return err
}

// formatPath writes each visited state as (row, col)
func formatPath(path []int, n int) string {
	cells := make([]string, len(path))
	for i, s := range path {
		cells[i] = fmt.Sprintf("(%d, %d)", s/n, s%n)
	}
	return strings.Join(cells, " -> ")
}

func saveFrames(dir string, c experiment.Config, g *gridworld.GridWorld,
	path []int) error {
	r, err := render.NewRenderer(g.GoalVsHole, c.EnvConf.GridSize,
		c.EnvConf.Cell())
	if err != nil {
		return err
	}
	if err := mkdir(dir); err != nil {
		return err
	}

	var total float64
	wins := 0
	for i, s := range path {
		if i > 0 {
			total += g.GetReward(s)
		}
		if g.IsGoal(s) && !g.IsHole(s) {
			wins = 1
		}
		filename := filepath.Join(dir, fmt.Sprintf("step_%03d.png", i))
		if err := r.SavePNG(filename, s, 1, total, wins); err != nil {
			return errors.Wrapf(err, "saveFrames: %v", filename)
		}
	}
	return nil
}
