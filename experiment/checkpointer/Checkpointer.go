// Package checkpointer implements Checkpointers, which periodically
// save objects to disk while an experiment runs
package checkpointer

// Serializable is an object that can be saved to a file
type Serializable interface {
	Save(filename string) error
}

// Checkpointer checkpoints/saves serializable objects based on the
// number of episodes completed so far
type Checkpointer interface {
	Checkpoint(episode int) error
}
