// Package report prints and plots the outcome of a training run
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/goalvshole/agent/tabular/qtable"
	"github.com/samuelfneumann/goalvshole/environment/gridworld"
)

// Table writes the action values of q to w, one state per row. The
// greedy action of each state is highlighted when colors is true.
func Table(w io.Writer, q *qtable.QTable, colors bool) error {
	au := aurora.NewAurora(colors)
	states, actions := q.Dims()

	var b strings.Builder
	b.WriteString("Q-Table:\n")
	fmt.Fprintf(&b, "%6s", "state")
	for a := 0; a < actions; a++ {
		fmt.Fprintf(&b, " %9s", gridworld.Action(a))
	}
	b.WriteString("\n")

	for s := 0; s < states; s++ {
		fmt.Fprintf(&b, "%6d", s)
		best := q.BestAction(s)
		for a, v := range q.Row(s) {
			cell := fmt.Sprintf(" %9.3f", v)
			if a == best {
				b.WriteString(au.Green(cell).String())
			} else {
				b.WriteString(cell)
			}
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// PolicyMap writes the greedy policy of q over the grid of task as a
// map of arrows. Holes are marked H and goals G.
func PolicyMap(w io.Writer, q *qtable.QTable, task *gridworld.GoalVsHole,
	n int, colors bool) error {
	au := aurora.NewAurora(colors)

	var b strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			s := row*n + col
			switch {
			case task.IsHole(s):
				b.WriteString(au.Red(" H ").String())
			case task.IsGoal(s):
				b.WriteString(au.Green(" G ").String())
			default:
				arrow := gridworld.Action(q.BestAction(s)).Arrow()
				b.WriteString(au.Blue(" " + arrow + " ").String())
			}
			b.WriteString(au.White("|").String())
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
