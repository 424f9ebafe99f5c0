package gridworld

import (
	"testing"
)

var testRewards = Rewards{Step: -1, Hole: -10, Goal: 10}

func newTestDynamics(t *testing.T, n int, holes, goals []int) Dynamics {
	t.Helper()
	start, err := NewSingleStart(StartState, n)
	if err != nil {
		t.Fatal(err)
	}
	task, err := NewGoalVsHole(start, holes, goals, n, testRewards)
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewDynamics(n, task)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestTransitionBoundaryClipping(t *testing.T) {
	n := 4
	d := newTestDynamics(t, n, nil, nil)

	for state := 0; state < n*n; state++ {
		row, col := state/n, state%n

		var outward []Action
		if row == 0 {
			outward = append(outward, Up)
		}
		if row == n-1 {
			outward = append(outward, Down)
		}
		if col == 0 {
			outward = append(outward, Left)
		}
		if col == n-1 {
			outward = append(outward, Right)
		}

		for _, a := range outward {
			next, reward, terminal := d.Transition(state, a)
			if next != state {
				t.Errorf("state %d action %v: want clipped state %d, got %d",
					state, a, state, next)
			}
			if reward != testRewards.Step {
				t.Errorf("state %d action %v: want step reward %v, got %v",
					state, a, testRewards.Step, reward)
			}
			if terminal {
				t.Errorf("state %d action %v: clipped move should not be "+
					"terminal", state, a)
			}
		}
	}
}

func TestTransitionInteriorMoves(t *testing.T) {
	d := newTestDynamics(t, 3, nil, nil)

	tests := []struct {
		action Action
		want   int
	}{
		{Up, 1},
		{Down, 7},
		{Left, 3},
		{Right, 5},
	}

	for _, test := range tests {
		if next, _, _ := d.Transition(4, test.action); next != test.want {
			t.Errorf("action %v from 4: want %d, got %d", test.action,
				test.want, next)
		}
	}
}

func TestTransitionClippedIntoTerminal(t *testing.T) {
	// The start cell itself is a goal, so a clipped move stays terminal
	d := newTestDynamics(t, 2, nil, []int{0})

	next, reward, terminal := d.Transition(0, Up)
	if next != 0 || reward != testRewards.Goal || !terminal {
		t.Errorf("want (0, %v, true), got (%d, %v, %v)", testRewards.Goal,
			next, reward, terminal)
	}
}

func TestTransitionRewards(t *testing.T) {
	d := newTestDynamics(t, 3, []int{8}, []int{6})

	state := StartState
	actions := []Action{Down, Down}
	wantStates := []int{3, 6}
	wantRewards := []float64{-1, 10}
	wantTerminal := []bool{false, true}

	for i, a := range actions {
		next, reward, terminal := d.Transition(state, a)
		if next != wantStates[i] {
			t.Errorf("step %d: want state %d, got %d", i, wantStates[i], next)
		}
		if reward != wantRewards[i] {
			t.Errorf("step %d: want reward %v, got %v", i, wantRewards[i],
				reward)
		}
		if terminal != wantTerminal[i] {
			t.Errorf("step %d: want terminal %v, got %v", i, wantTerminal[i],
				terminal)
		}
		state = next
	}
}

func TestTransitionHolePrecedence(t *testing.T) {
	d := newTestDynamics(t, 2, []int{1}, []int{1})

	_, reward, terminal := d.Transition(0, Right)
	if reward != testRewards.Hole || !terminal {
		t.Errorf("want hole reward %v and terminal, got %v, %v",
			testRewards.Hole, reward, terminal)
	}
}

func TestTransitionDeterministic(t *testing.T) {
	d := newTestDynamics(t, 5, []int{7, 12}, []int{24})

	for state := 0; state < 25; state++ {
		for a := Up; a <= Right; a++ {
			s1, r1, t1 := d.Transition(state, a)
			s2, r2, t2 := d.Transition(state, a)
			if s1 != s2 || r1 != r2 || t1 != t2 {
				t.Fatalf("state %d action %v: transitions differ", state, a)
			}
		}
	}
}

func TestSingleCellGrid(t *testing.T) {
	d := newTestDynamics(t, 1, nil, nil)

	for a := Up; a <= Right; a++ {
		if next, _, _ := d.Transition(0, a); next != 0 {
			t.Errorf("action %v: want 0, got %d", a, next)
		}
	}
}

func TestNewGoalVsHoleOutOfRange(t *testing.T) {
	start, _ := NewSingleStart(StartState, 3)

	if _, err := NewGoalVsHole(start, []int{9}, nil, 3, testRewards); err == nil {
		t.Error("hole 9 on a 3x3 grid should be rejected")
	}
	if _, err := NewGoalVsHole(start, nil, []int{-1}, 3, testRewards); err == nil {
		t.Error("goal -1 should be rejected")
	}
}

func BenchmarkTransition(b *testing.B) {
	start, _ := NewSingleStart(StartState, 8)
	task, _ := NewGoalVsHole(start, []int{10, 20}, []int{63}, 8, testRewards)
	d, _ := NewDynamics(8, task)

	for i := 0; i < b.N; i++ {
		d.Transition(i%64, Action(i%NumActions))
	}
}
