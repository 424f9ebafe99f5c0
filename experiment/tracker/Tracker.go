// Package tracker defines Trackers, which observe an experiment as it
// runs and save what they observe once it has finished
package tracker

import (
	"encoding/gob"
	"os"

	"github.com/pkg/errors"
	ts "github.com/samuelfneumann/goalvshole/timestep"
)

// Snapshot is everything a Tracker is told about a single timestep of
// an experiment
type Snapshot struct {
	Episode int         // 1-based index of the running episode
	Step    ts.TimeStep // timestep produced by the environment
	Return  float64     // return accumulated so far this episode
	Wins    int         // goals reached so far, including this step
	Epsilon float64     // exploration rate of the agent this episode
}

// Interface Tracker keeps track of experiment data and saves the data
// after the experiment has finished. Track is called once for every
// timestep of every episode, beginning with the first timestep
// returned by the environment's Reset.
type Tracker interface {
	Track(s Snapshot)
	Save() error
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "loadData: could not open data file")
	}
	defer file.Close()

	var data []float64
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "loadData: could not decode data")
	}
	return data, nil
}
