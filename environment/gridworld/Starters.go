package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/goalvshole/environment"
)

// StartState is the cell that every episode starts in
const StartState int = 0

// SingleStart always starts episodes in the same cell
type SingleStart struct {
	state int
}

// NewSingleStart returns a Starter which always starts in cell state of
// a grid with n rows and n columns
func NewSingleStart(state, n int) (environment.Starter, error) {
	if state < 0 || state >= n*n {
		return &SingleStart{}, fmt.Errorf("newSingleStart: state %d outside "+
			"of grid with %d cells", state, n*n)
	}
	return &SingleStart{state}, nil
}

// Start returns the starting cell
func (s *SingleStart) Start() int {
	return s.state
}
