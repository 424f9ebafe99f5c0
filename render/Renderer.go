// Package render draws frames of the goal-versus-hole gridworld and
// records episodes as animated GIFs
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/goalvshole/environment/gridworld"
)

// Colours used when drawing a frame
var (
	Background  = color.RGBA{255, 255, 255, 255}
	GridLine    = color.RGBA{0, 0, 0, 255}
	HoleColour  = color.RGBA{255, 0, 0, 255}
	GoalColour  = color.RGBA{0, 255, 0, 255}
	AgentColour = color.RGBA{0, 0, 255, 255}
	TextColour  = color.RGBA{255, 255, 255, 255}
	InfoColour  = color.RGBA{0, 0, 0, 255}
)

// Renderer draws frames of a single gridworld. Holes are drawn as red
// cells marked "H", goals as green cells marked "G" and the agent as a
// blue cell marked "A" which covers whatever cell it occupies.
type Renderer struct {
	n     int
	cell  int
	holes []int
	goals []int
}

// NewRenderer returns a Renderer for an n x n grid with the terminal
// cells of task, drawing each cell with a side length of cell pixels
func NewRenderer(task *gridworld.GoalVsHole, n, cell int) (*Renderer,
	error) {
	if n < 1 || cell < 1 {
		return nil, fmt.Errorf("newRenderer: grid size (%d) and cell "+
			"size (%d) must be positive", n, cell)
	}
	return &Renderer{
		n:     n,
		cell:  cell,
		holes: task.Holes(),
		goals: task.Goals(),
	}, nil
}

// Size returns the width and height of rendered frames in pixels
func (r *Renderer) Size() int {
	return r.n * r.cell
}

// Frame draws the grid with the agent in state. The top-left corner
// carries the line "Episode | Total Reward | Current Wins".
func (r *Renderer) Frame(state, episode int, total float64,
	wins int) image.Image {
	size := r.Size()
	dc := gg.NewContext(size, size)
	dc.SetColor(Background)
	dc.Clear()

	// Grid
	dc.SetColor(GridLine)
	dc.SetLineWidth(1)
	for x := 0; x < size; x += r.cell {
		dc.DrawLine(float64(x), 0, float64(x), float64(size))
		dc.DrawLine(0, float64(x), float64(size), float64(x))
	}
	dc.Stroke()

	for _, h := range r.holes {
		r.drawCell(dc, h, HoleColour, "H")
	}
	for _, g := range r.goals {
		r.drawCell(dc, g, GoalColour, "G")
	}
	r.drawCell(dc, state, AgentColour, "A")

	dc.SetColor(InfoColour)
	info := fmt.Sprintf("Episode: %d | Total Reward: %v | Current Wins: %d",
		episode, total, wins)
	dc.DrawString(info, 10, 20)

	return dc.Image()
}

// SavePNG draws a frame and saves it to filename
func (r *Renderer) SavePNG(filename string, state, episode int,
	total float64, wins int) error {
	return gg.SavePNG(filename, r.Frame(state, episode, total, wins))
}

// drawCell fills a grid cell with c and writes label in its centre
func (r *Renderer) drawCell(dc *gg.Context, state int, c color.Color,
	label string) {
	row, col := state/r.n, state%r.n
	x, y := float64(col*r.cell), float64(row*r.cell)
	size := float64(r.cell)

	dc.DrawRectangle(x, y, size, size)
	dc.SetColor(c)
	dc.Fill()

	dc.SetColor(TextColour)
	dc.DrawStringAnchored(label, x+size/2, y+size/2, 0.5, 0.5)
}
