package policy

import (
	"math"
	"testing"

	"github.com/samuelfneumann/goalvshole/agent/tabular/qtable"
	ts "github.com/samuelfneumann/goalvshole/timestep"
)

func newTable(t *testing.T) *qtable.QTable {
	t.Helper()
	q, err := qtable.New(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	q.Update(0, 2, 1.0)
	return q
}

func TestEGreedyGreedyWhenEpsilonZero(t *testing.T) {
	p, err := NewEGreedy(0, 1, newTable(t))
	if err != nil {
		t.Fatal(err)
	}
	step := ts.New(ts.First, 0, 0, 0)

	for i := 0; i < 100; i++ {
		if a := p.SelectAction(step); a != 2 {
			t.Fatalf("selection %d: want greedy action 2, got %d", i, a)
		}
	}
}

func TestEGreedyExploresAllActions(t *testing.T) {
	p, _ := NewEGreedy(1, 7, newTable(t))
	step := ts.New(ts.First, 0, 0, 0)

	counts := make([]int, 4)
	for i := 0; i < 4000; i++ {
		a := p.SelectAction(step)
		if a < 0 || a > 3 {
			t.Fatalf("action %d out of range", a)
		}
		counts[a]++
	}
	for a, c := range counts {
		if c < 800 || c > 1200 {
			t.Errorf("action %d selected %d times out of 4000", a, c)
		}
	}
}

func TestEGreedySeeded(t *testing.T) {
	table := newTable(t)
	p1, _ := NewEGreedy(0.5, 42, table)
	p2, _ := NewEGreedy(0.5, 42, table)
	step := ts.New(ts.First, 0, 0, 0)

	for i := 0; i < 200; i++ {
		if a1, a2 := p1.SelectAction(step), p2.SelectAction(step); a1 != a2 {
			t.Fatalf("selection %d: same seed gave %d and %d", i, a1, a2)
		}
	}
}

func TestEGreedyEval(t *testing.T) {
	p, _ := NewEGreedy(1, 3, newTable(t))
	p.Eval()
	if !p.IsEval() {
		t.Fatal("policy should be in evaluation mode")
	}

	step := ts.New(ts.First, 0, 0, 0)
	for i := 0; i < 50; i++ {
		if a := p.SelectAction(step); a != 2 {
			t.Fatalf("evaluation mode: want greedy action 2, got %d", a)
		}
	}

	p.Train()
	if p.IsEval() {
		t.Error("policy should be in training mode")
	}
}

func TestEGreedyDecay(t *testing.T) {
	e0, d := 0.9, 0.95
	p, _ := NewEGreedy(e0, 1, newTable(t))

	for k := 1; k <= 200; k++ {
		p.Decay(d)
		want := e0 * math.Pow(d, float64(k))
		if math.Abs(p.Epsilon()-want) > 1e-12 {
			t.Fatalf("after %d decays: want %v, got %v", k, want, p.Epsilon())
		}
		if p.Epsilon() < 0 || p.Epsilon() > e0 {
			t.Fatalf("after %d decays: epsilon %v out of [0, %v]", k,
				p.Epsilon(), e0)
		}
	}
}

func TestEGreedyInvalidEpsilon(t *testing.T) {
	for _, e := range []float64{-0.1, 1.1} {
		if _, err := NewEGreedy(e, 1, newTable(t)); err == nil {
			t.Errorf("epsilon %v: expected error", e)
		}
	}
}

func TestGreedy(t *testing.T) {
	p := NewGreedy(newTable(t))
	if a := p.SelectAction(ts.New(ts.Mid, 0, 0, 1)); a != 2 {
		t.Errorf("want 2, got %d", a)
	}
	if a := p.SelectAction(ts.New(ts.Mid, 0, 1, 1)); a != 0 {
		t.Errorf("tie: want 0, got %d", a)
	}
}
