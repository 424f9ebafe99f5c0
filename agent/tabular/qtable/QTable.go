// Package qtable implements a dense table of action values for
// environments with discrete states and discrete actions
package qtable

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goalvshole/utils/matutils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// QTable stores one action value estimate per (state, action) pair.
// Rows index states and columns index actions. All values are zero
// until they are updated.
//
// The underlying matrix is never exposed; every write goes through
// Update. QTable is not safe for concurrent use.
type QTable struct {
	values *mat.Dense
}

// New returns a zero-initialized QTable for the given number of states
// and actions
func New(states, actions int) (*QTable, error) {
	if states < 1 || actions < 1 {
		return nil, fmt.Errorf("new: cannot create table with %d states "+
			"and %d actions", states, actions)
	}
	return &QTable{mat.NewDense(states, actions, nil)}, nil
}

// Dims returns the number of states and actions in the table
func (q *QTable) Dims() (states, actions int) {
	return q.values.Dims()
}

// Value returns the action value of taking action in state
func (q *QTable) Value(state, action int) float64 {
	return q.values.At(state, action)
}

// BestAction returns the action with the largest value in state. Ties
// are broken in favour of the lowest action index.
func (q *QTable) BestAction(state int) int {
	return floats.MaxIdx(q.values.RawRowView(state))
}

// Max returns the largest action value in state
func (q *QTable) Max(state int) float64 {
	return floats.Max(q.values.RawRowView(state))
}

// Update overwrites the action value of taking action in state
func (q *QTable) Update(state, action int, value float64) {
	q.values.Set(state, action, value)
}

// Row returns a copy of the action values in state
func (q *QTable) Row(state int) []float64 {
	return mat.Row(nil, state, q.values)
}

// Dense returns a copy of the full table with shape (states, actions)
func (q *QTable) Dense() *mat.Dense {
	return mat.DenseCopyOf(q.values)
}

// GobEncode satisfies the gob.GobEncoder interface
func (q *QTable) GobEncode() ([]byte, error) {
	return q.values.MarshalBinary()
}

// GobDecode satisfies the gob.GobDecoder interface
func (q *QTable) GobDecode(in []byte) error {
	var values mat.Dense
	if err := values.UnmarshalBinary(in); err != nil {
		return errors.Wrap(err, "gobDecode")
	}
	q.values = &values
	return nil
}

// Save gob encodes the table to filename
func (q *QTable) Save(filename string) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(q); err != nil {
		return errors.Wrapf(err, "save: could not encode table")
	}
	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "save: could not write %v", filename)
	}
	return nil
}

// Load decodes a table previously saved with Save
func Load(filename string) (*QTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "load: could not open %v", filename)
	}
	defer file.Close()

	q := &QTable{}
	if err := gob.NewDecoder(file).Decode(q); err != nil {
		return nil, errors.Wrapf(err, "load: could not decode %v", filename)
	}
	return q, nil
}

func (q *QTable) String() string {
	return matutils.Format(q.values)
}

// States returns the number of states in the table
func (q *QTable) States() int {
	r, _ := q.values.Dims()
	return r
}
