package trackers

import (
	"github.com/samuelfneumann/goalvshole/experiment/tracker"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment.
// Note that an episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// length will not be saved.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength tracker which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode.
func (e *EpisodeLength) Track(s tracker.Snapshot) {
	if s.Step.Last() {
		e.episodeLengths = append(e.episodeLengths, float64(s.Step.Number))
	}
}

// Data returns the number of steps taken in each finished episode
func (e *EpisodeLength) Data() []float64 {
	out := make([]float64, len(e.episodeLengths))
	copy(out, e.episodeLengths)
	return out
}

// Save saves the data tracked by the EpisodeLength Tracker to disk.
// Lengths are stored as float64 so that they can be read back with
// tracker.LoadData.
func (e *EpisodeLength) Save() error {
	return save(e.filename, e.episodeLengths)
}
