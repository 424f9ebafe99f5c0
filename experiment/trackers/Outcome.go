package trackers

import (
	"github.com/samuelfneumann/goalvshole/experiment/tracker"
	ts "github.com/samuelfneumann/goalvshole/timestep"
)

// Outcome tracks how each episode of an experiment ended
type Outcome struct {
	ends     []ts.EndType
	filename string
}

// NewOutcome returns a new Outcome tracker saving to filename
func NewOutcome(filename string) *Outcome {
	return &Outcome{filename: filename}
}

// Track records the end type of every last timestep
func (o *Outcome) Track(s tracker.Snapshot) {
	if s.Step.Last() {
		o.ends = append(o.ends, s.Step.End())
	}
}

// Data returns the end type of every finished episode
func (o *Outcome) Data() []ts.EndType {
	out := make([]ts.EndType, len(o.ends))
	copy(out, o.ends)
	return out
}

// Count returns the number of finished episodes that ended with e
func (o *Outcome) Count(e ts.EndType) int {
	n := 0
	for _, end := range o.ends {
		if end == e {
			n++
		}
	}
	return n
}

// WinRate returns, for each finished episode, the fraction of the
// preceding window episodes (including itself) that reached a goal.
// Fewer than window episodes are averaged at the start of training.
func (o *Outcome) WinRate(window int) []float64 {
	if window < 1 {
		window = 1
	}

	rate := make([]float64, len(o.ends))
	wins := 0
	for i, end := range o.ends {
		if end == ts.Goal {
			wins++
		}
		if i >= window && o.ends[i-window] == ts.Goal {
			wins--
		}
		n := i + 1
		if n > window {
			n = window
		}
		rate[i] = float64(wins) / float64(n)
	}
	return rate
}

// Save saves the end type of each episode to disk as float64 codes so
// that they can be read back with tracker.LoadData
func (o *Outcome) Save() error {
	codes := make([]float64, len(o.ends))
	for i, end := range o.ends {
		codes[i] = float64(end)
	}
	return save(o.filename, codes)
}
