package checkpointer

import (
	"fmt"
	"time"
)

// Naming determines how checkpoint files are named
type Naming string

const (
	// Enumerated names checkpoints prefix1.bin, prefix2.bin, ...
	Enumerated Naming = "enumerated"

	// Episode names checkpoints by the episode they were taken at
	Episode Naming = "episode"

	// Timestamped names checkpoints prefix-<unix nanoseconds>.bin
	Timestamped Naming = "time"
)

// Namer returns the filename of the checkpoint taken at episode
type Namer func(episode int) string

// NewNamer returns a Namer producing names of the form
// <prefix><suffix><extension>, where the suffix is chosen by naming
func NewNamer(naming Naming, prefix, extension string) (Namer, error) {
	switch naming {
	case Enumerated:
		count := 0
		return func(int) string {
			count++
			return fmt.Sprintf("%v%d%v", prefix, count, extension)
		}, nil

	case Episode:
		return func(episode int) string {
			return fmt.Sprintf("%v%d%v", prefix, episode, extension)
		}, nil

	case Timestamped:
		return func(int) string {
			return fmt.Sprintf("%v%d%v", prefix, time.Now().UnixNano(),
				extension)
		}, nil
	}
	return nil, fmt.Errorf("newNamer: unknown naming %q, want one of "+
		"%q, %q or %q", naming, Enumerated, Episode, Timestamped)
}
