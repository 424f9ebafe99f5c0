package render

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goalvshole/experiment/tracker"
)

// FrameDelay is the delay between GIF frames in 100ths of a second,
// which plays episodes back at two frames per second
const FrameDelay = 50

// GIF is a tracker.Tracker which records every episode of an
// experiment as an animated GIF named episode_<n>.gif. Only the GIFs
// of the most recent episodes are kept on disk; older ones are
// removed as newer episodes finish.
type GIF struct {
	renderer *Renderer
	dir      string
	keep     int

	frames []*image.Paletted
	saved  []string
	err    error
}

// NewGIF returns a GIF tracker writing into dir and keeping the GIFs
// of the last keep episodes. The directory is created if needed and
// any GIFs already in it are removed.
func NewGIF(r *Renderer, dir string, keep int) (*GIF, error) {
	if keep < 0 {
		return nil, fmt.Errorf("newGIF: cannot keep %d GIFs", keep)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "newGIF: could not create %v", dir)
	}

	old, err := filepath.Glob(filepath.Join(dir, "*.gif"))
	if err != nil {
		return nil, errors.Wrap(err, "newGIF")
	}
	for _, f := range old {
		if err := os.Remove(f); err != nil {
			return nil, errors.Wrapf(err, "newGIF: could not remove %v", f)
		}
	}

	return &GIF{renderer: r, dir: dir, keep: keep}, nil
}

// Track draws a frame for the snapshot and writes the episode's GIF
// once its last timestep has been drawn. The first error encountered
// is reported by Save.
func (g *GIF) Track(s tracker.Snapshot) {
	if g.keep == 0 || g.err != nil {
		return
	}
	if s.Step.First() {
		g.frames = g.frames[:0]
	}

	frame := g.renderer.Frame(s.Step.Observation, s.Episode, s.Return, s.Wins)
	paletted := image.NewPaletted(frame.Bounds(), palette.WebSafe)
	draw.Draw(paletted, paletted.Rect, frame, frame.Bounds().Min, draw.Src)
	g.frames = append(g.frames, paletted)

	if s.Step.Last() {
		g.err = g.write(s.Episode)
	}
}

// write encodes the frames of episode and removes GIFs of episodes
// which are no longer among the most recent
func (g *GIF) write(episode int) error {
	filename := filepath.Join(g.dir, fmt.Sprintf("episode_%d.gif", episode))
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "write: could not create %v", filename)
	}
	defer file.Close()

	delays := make([]int, len(g.frames))
	for i := range delays {
		delays[i] = FrameDelay
	}
	anim := &gif.GIF{Image: g.frames, Delay: delays}
	if err := gif.EncodeAll(file, anim); err != nil {
		return errors.Wrapf(err, "write: could not encode %v", filename)
	}
	g.frames = nil
	slog.Debug("saved episode gif", "episode", episode, "file", filename)

	g.saved = append(g.saved, filename)
	for len(g.saved) > g.keep {
		if err := os.Remove(g.saved[0]); err != nil {
			return errors.Wrapf(err, "write: could not remove %v",
				g.saved[0])
		}
		g.saved = g.saved[1:]
	}
	return nil
}

// Saved returns the GIFs currently on disk, oldest first
func (g *GIF) Saved() []string {
	out := make([]string, len(g.saved))
	copy(out, g.saved)
	return out
}

// Save returns the first error encountered while writing GIFs. The
// GIFs themselves are written as each episode finishes.
func (g *GIF) Save() error {
	return g.err
}
