package checkpointer

import "fmt"

// nEpisode implements checkpointing every N episodes
type nEpisode struct {
	interval int
	object   Serializable

	// filename names the file each checkpoint is saved in, e.g.
	//
	//	namer, _ := NewNamer(Episode, "table_", ".bin")
	//	n, _ := NewNEpisode(10, table, namer)
	filename Namer
}

// NewNEpisode returns a checkpointer that checkpoints every n episodes
func NewNEpisode(n int, object Serializable,
	filename Namer) (Checkpointer, error) {
	if n < 1 {
		return nil, fmt.Errorf("newNEpisode: interval must be positive, "+
			"got %d", n)
	}
	return &nEpisode{
		interval: n,
		object:   object,
		filename: filename,
	}, nil
}

// Checkpoint saves the tracked object by calling its Save() method if
// episode is a multiple of the interval
func (n *nEpisode) Checkpoint(episode int) error {
	if episode > 0 && episode%n.interval == 0 {
		return n.object.Save(n.filename(episode))
	}
	return nil
}
