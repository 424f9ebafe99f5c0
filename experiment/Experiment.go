// Package experiment implements functionality for running an experiment
package experiment

import (
	"context"

	"github.com/samuelfneumann/goalvshole/agent/tabular/qtable"
	"github.com/samuelfneumann/goalvshole/experiment/checkpointer"
	"github.com/samuelfneumann/goalvshole/experiment/tracker"
	ts "github.com/samuelfneumann/goalvshole/timestep"
)

// Interface Experiment outlines structs that can run experiments.
// The Run() method will run episodes until one of the experiment's
// limits is reached or its context is cancelled. The RunEpisode()
// function will run a single episode.
//
// Experiments send a tracker.Snapshot of every timestep to their
// Trackers using the Tracker's Track() method. The Tracker then
// determines which data it caches, and Save() asks every Tracker to
// write that data to disk. New Trackers can be registered with an
// Experiment through the constructor or through Register().
type Experiment interface {
	Run(ctx context.Context) (Result, error)
	RunEpisode() (Outcome, error)

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t tracker.Tracker)

	// Adds a checkpointer which is consulted after every episode
	RegisterCheckpointer(c checkpointer.Checkpointer)
}

// Limits determines when an experiment and its episodes end
type Limits struct {
	MaxEpisodes     int // training stops after this many episodes
	MaxWins         int // training stops after this many goals
	MaxEpisodeSteps int // episodes are truncated after this many steps
}

// Outcome describes a single finished episode
type Outcome struct {
	Return float64
	Steps  int
	End    ts.EndType // Hole, Goal or Timeout
}

// Result summarizes a finished, or aborted, experiment
type Result struct {
	Episodes    int
	Wins        int
	Losses      int
	Truncations int
	Epsilon     float64        // exploration rate after the last episode
	QTable      *qtable.QTable // the learned action values
}

// WinRate returns the fraction of episodes that reached a goal
func (r Result) WinRate() float64 {
	if r.Episodes == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Episodes)
}
