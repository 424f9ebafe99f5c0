package gridworld

import "fmt"

// Action is a movement in the GridWorld
type Action int

// Actions available in a GridWorld
const (
	Up Action = iota
	Down
	Left
	Right
)

// NumActions is the number of actions available in a GridWorld
const NumActions int = 4

// Valid returns whether a is one of the four legal actions
func (a Action) Valid() bool {
	return a >= Up && a <= Right
}

func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Arrow returns a single-character arrow pointing in the direction of a
func (a Action) Arrow() string {
	switch a {
	case Up:
		return "↑"
	case Down:
		return "↓"
	case Left:
		return "←"
	case Right:
		return "→"
	}
	return "?"
}
