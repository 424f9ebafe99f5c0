package environment

import (
	"fmt"
)

// SpecType determines what kind of specification a Spec is. A Spec can
// specify the layout of an action or an observation
type SpecType int

const (
	Action SpecType = iota
	Observation
)

// Cardinality determines the cardinality of a number (discrete or continuous)
type Cardinality string

const (
	Discrete Cardinality = "Discrete"
)

// Spec implements an environment specification, which tells the type
// and bounds of the actions or observations in an environment. Values
// are integers in [LowerBound, UpperBound].
type Spec struct {
	Type       SpecType
	LowerBound int
	UpperBound int
	Cardinality
}

// NewSpec constructs a new environment specification
func NewSpec(t SpecType, lowerBound, upperBound int,
	cardinality Cardinality) Spec {
	if lowerBound > upperBound {
		panic(fmt.Sprintf("lower bound %v must not exceed upper bound %v",
			lowerBound, upperBound))
	}
	return Spec{t, lowerBound, upperBound, cardinality}
}

// Len returns the number of distinct values described by the Spec
func (s Spec) Len() int {
	return s.UpperBound - s.LowerBound + 1
}

// Contains returns whether v lies within the bounds of the Spec
func (s Spec) Contains(v int) bool {
	return v >= s.LowerBound && v <= s.UpperBound
}
