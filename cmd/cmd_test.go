package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/goalvshole/agent/tabular/qtable"
	"github.com/samuelfneumann/goalvshole/experiment/tracker"
)

const testINI = `[ENV]
grid_size = 3
cell_size = 40
holes = 4
goals = 8
reward_hole = -10
reward_goal = 10
reward_non_terminal = -1
render_mode = gif
max_episode_steps = 50

[AGENT]
alpha = 0.5
gamma = 0.9
epsilon = 1.0
epsilon_decay = 0.95
total_episode_count = 30
max_wins = 1000
max_gifs = 2
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestTrainAndEval(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "env.ini")
	if err := os.WriteFile(config, []byte(testINI), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")

	stdout, err := run(t, "train", "-c", config, "-o", out, "--color=false",
		"--checkpoint-every", "10")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Q-Table:", "Greedy policy:", "Episodes: 30"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("train output is missing %q:\n%v", want, stdout)
		}
	}

	for _, f := range []string{TableFile, ConfigFile, ReturnsFile,
		LengthsFile, OutcomeFile, ChartFile, "checkpoint_3.bin"} {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			t.Errorf("missing output %v: %v", f, err)
		}
	}

	gifs, _ := filepath.Glob(filepath.Join(out, GIFDir, "*.gif"))
	if len(gifs) != 2 {
		t.Errorf("want 2 GIFs, got %v", gifs)
	}

	returns, err := tracker.LoadData(filepath.Join(out, ReturnsFile))
	if err != nil {
		t.Fatal(err)
	}
	if len(returns) != 30 {
		t.Errorf("want 30 returns, got %d", len(returns))
	}

	table, err := qtable.Load(filepath.Join(out, TableFile))
	if err != nil {
		t.Fatal(err)
	}
	if s, a := table.Dims(); s != 9 || a != 4 {
		t.Errorf("want (9, 4) table, got (%d, %d)", s, a)
	}

	frames := filepath.Join(dir, "frames")
	stdout, err = run(t, "eval", "-c", config, "-t",
		filepath.Join(out, TableFile), "--frames", frames)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout, "Path: (0, 0)") ||
		!strings.Contains(stdout, "Outcome:") {
		t.Errorf("unexpected eval output %q", stdout)
	}
	pngs, _ := filepath.Glob(filepath.Join(frames, "*.png"))
	if len(pngs) == 0 {
		t.Error("no frames saved")
	}
}

func TestEvalTableMismatch(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "env.ini")
	os.WriteFile(config, []byte(testINI), 0o644)

	table, _ := qtable.New(4, 4)
	filename := filepath.Join(dir, "small.bin")
	if err := table.Save(filename); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "eval", "-c", config, "-t", filename); err == nil {
		t.Error("expected error for a table of the wrong shape")
	}
}

func TestCheckpointNaming(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "env.ini")
	if err := os.WriteFile(config, []byte(testINI), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out")

	_, err := run(t, "train", "-c", config, "-o", out, "--color=false",
		"--checkpoint-every", "10", "--checkpoint-naming", "episode")
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"checkpoint_10.bin", "checkpoint_20.bin",
		"checkpoint_30.bin"} {
		if _, err := os.Stat(filepath.Join(out, f)); err != nil {
			t.Errorf("missing checkpoint %v: %v", f, err)
		}
	}

	_, err = run(t, "train", "-c", config, "-o", out,
		"--checkpoint-every", "10", "--checkpoint-naming", "hourly")
	if err == nil {
		t.Error("expected error for unknown checkpoint naming")
	}
}

func TestUnknownLogLevel(t *testing.T) {
	_, err := run(t, "eval", "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "log level") {
		t.Errorf("want unknown log level error, got %v", err)
	}
}
