// Package trackers implements Trackers which cache and save data
// generated during an experiment
package trackers

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goalvshole/experiment/tracker"
)

// Return tracks and saves the episodic return in an experiment. When
// an environment returns a TimeStep, this Tracker will extract the
// reward and accumulate the return for each episode in the experiment.
//
// Note: An episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// return will not be saved.
type Return struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker. If filename is
// empty the returns are only kept in memory.
func NewReturn(filename string) *Return {
	return &Return{lastTimeStep: -1, filename: filename}
}

// Track tracks the rewards seen on a timestep. When a new episode
// starts, this method will automatically detect this and start
// accumulating the rewards for this new episode separately from the
// rewards seen on previous episodes.
//
// A first timestep always starts a new episode, discarding the return
// of an episode that was abandoned before its last timestep. Track
// panics if it is called for non-sequential timesteps within an
// episode.
func (r *Return) Track(s tracker.Snapshot) {
	step := s.Step
	if step.First() {
		r.currentReturn = 0.0
		r.lastTimeStep = -1
	}
	if r.lastTimeStep+1 != step.Number {
		panic(fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number))
	}

	r.currentReturn += step.Reward
	if !step.Last() {
		r.lastTimeStep = step.Number
		return
	}

	r.episodeReturns = append(r.episodeReturns, r.currentReturn)
	r.currentReturn = 0.0
	r.lastTimeStep = -1
}

// Data returns the returns of all finished episodes
func (r *Return) Data() []float64 {
	out := make([]float64, len(r.episodeReturns))
	copy(out, r.episodeReturns)
	return out
}

// Save saves the data tracked by the Return Tracker to disk.
func (r *Return) Save() error {
	return save(r.filename, r.episodeReturns)
}

// save gob encodes data to filename, doing nothing if filename is
// empty
func save(filename string, data interface{}) error {
	if filename == "" {
		return nil
	}

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "save: could not open save file")
	}
	defer file.Close()

	if err = gob.NewEncoder(file).Encode(data); err != nil {
		return errors.Wrapf(err, "save: could not encode data to %v",
			filename)
	}
	return nil
}
