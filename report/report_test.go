package report

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/samuelfneumann/goalvshole/agent/tabular/qtable"
	"github.com/samuelfneumann/goalvshole/environment/gridworld"
	"github.com/samuelfneumann/goalvshole/experiment"
)

func testTable(t *testing.T) *qtable.QTable {
	t.Helper()
	q, err := qtable.New(4, gridworld.NumActions)
	if err != nil {
		t.Fatal(err)
	}
	q.Update(0, int(gridworld.Right), 5)
	q.Update(2, int(gridworld.Up), 1)
	q.Update(2, int(gridworld.Right), -2)
	return q
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	if err := Table(&buf, testTable(t), false); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "Q-Table:" {
		t.Errorf("want header Q-Table:, got %q", lines[0])
	}
	if len(lines) != 6 {
		t.Fatalf("want header, column names and 4 rows, got %d lines",
			len(lines))
	}
	for _, name := range []string{"Up", "Down", "Left", "Right"} {
		if !strings.Contains(lines[1], name) {
			t.Errorf("column %v missing from %q", name, lines[1])
		}
	}
	if !strings.Contains(lines[2], "5.000") {
		t.Errorf("row 0 should contain 5.000: %q", lines[2])
	}
}

func TestTableColours(t *testing.T) {
	var plain, coloured bytes.Buffer
	Table(&plain, testTable(t), false)
	Table(&coloured, testTable(t), true)

	if strings.Contains(plain.String(), "\x1b[") {
		t.Error("plain table contains escape codes")
	}
	if !strings.Contains(coloured.String(), "\x1b[") {
		t.Error("coloured table contains no escape codes")
	}
}

func TestPolicyMap(t *testing.T) {
	start, _ := gridworld.NewSingleStart(gridworld.StartState, 2)
	task, err := gridworld.NewGoalVsHole(start, []int{1}, []int{3}, 2,
		gridworld.Rewards{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := PolicyMap(&buf, testTable(t), task, 2, false); err != nil {
		t.Fatal(err)
	}

	want := " → | H |\n ↑ | G |\n"
	if buf.String() != want {
		t.Errorf("want policy map\n%v\ngot\n%v", want, buf.String())
	}
}

func TestChart(t *testing.T) {
	var buf bytes.Buffer
	err := Chart(&buf, "goalvshole", []float64{-3, 4, 8}, []float64{0, 0.5, 1})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<html") {
		t.Error("chart output is not an HTML page")
	}

	if err := Chart(&buf, "empty", nil, nil); err == nil {
		t.Error("expected error for empty chart")
	}
}

func TestSummarize(t *testing.T) {
	r := experiment.Result{Episodes: 4, Wins: 1, Losses: 2, Truncations: 1}
	s := Summarize(r, []float64{1, 3, 5, 7})

	if s.MeanReturn != 4 || s.BestReturn != 7 {
		t.Errorf("unexpected summary %+v", s)
	}
	if want := math.Sqrt(20.0 / 3); math.Abs(s.StdReturn-want) > 1e-12 {
		t.Errorf("want std %v, got %v", want, s.StdReturn)
	}
	if !strings.Contains(s.String(), "Wins: 1 (25.0%)") {
		t.Errorf("unexpected summary string %q", s.String())
	}

	single := Summarize(r, []float64{-2})
	if single.MeanReturn != -2 || single.StdReturn != 0 {
		t.Errorf("single episode summary %+v", single)
	}
}
