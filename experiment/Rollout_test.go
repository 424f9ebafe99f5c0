package experiment

import (
	"testing"

	"github.com/samuelfneumann/goalvshole/agent/tabular/policy"
	"github.com/samuelfneumann/goalvshole/agent/tabular/qtable"
	"github.com/samuelfneumann/goalvshole/environment/gridworld"
	ts "github.com/samuelfneumann/goalvshole/timestep"
)

func TestRollout(t *testing.T) {
	g, _, err := testConfig(3, []int{4}, []int{8}).EnvConf.Create()
	if err != nil {
		t.Fatal(err)
	}

	// Right, Right, Down, Down reaches the goal around the hole
	table, _ := qtable.New(9, gridworld.NumActions)
	table.Update(0, int(gridworld.Right), 1)
	table.Update(1, int(gridworld.Right), 1)
	table.Update(2, int(gridworld.Down), 1)
	table.Update(5, int(gridworld.Down), 1)

	outcome, path, err := Rollout(g, policy.NewGreedy(table), 100)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{0, 1, 2, 5, 8}
	if len(path) != len(want) {
		t.Fatalf("want path %v, got %v", want, path)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("step %d: want state %d, got %d", i, want[i], path[i])
		}
	}
	if outcome.End != ts.Goal || outcome.Return != 7 || outcome.Steps != 4 {
		t.Errorf("unexpected outcome %+v", outcome)
	}
}

func TestRolloutTruncated(t *testing.T) {
	g, _, _ := testConfig(3, []int{4}, []int{8}).EnvConf.Create()

	// An all-zero table always moves up, which never leaves the start
	table, _ := qtable.New(9, gridworld.NumActions)
	outcome, path, err := Rollout(g, policy.NewGreedy(table), 5)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.End != ts.Timeout || outcome.Steps != 5 || len(path) != 6 {
		t.Errorf("unexpected truncated rollout %+v, %v", outcome, path)
	}
	if outcome.Return != -5 {
		t.Errorf("want return -5, got %v", outcome.Return)
	}
}
