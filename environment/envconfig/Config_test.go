package envconfig

import (
	"testing"

	"github.com/pkg/errors"
	env "github.com/samuelfneumann/goalvshole/environment"
	"github.com/samuelfneumann/goalvshole/environment/gridworld"
)

func validConfig() Config {
	return Config{
		GridSize:   4,
		CellSize:   50,
		Holes:      []int{5, 7},
		Goals:      []int{15},
		RewardStep: -1,
		RewardHole: -10,
		RewardGoal: 10,
		RenderMode: None,
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := map[string]func(c *Config){
		"zero grid":      func(c *Config) { c.GridSize = 0 },
		"negative cell":  func(c *Config) { c.CellSize = -5 },
		"hole too large": func(c *Config) { c.Holes = []int{16} },
		"negative goal":  func(c *Config) { c.Goals = []int{-1} },
		"overlap":        func(c *Config) { c.Goals = []int{7} },
		"render mode":    func(c *Config) { c.RenderMode = "window" },
	}
	for name, modify := range tests {
		c := validConfig()
		modify(&c)
		if err := c.Validate(); !errors.Is(err, env.ErrConfiguration) {
			t.Errorf("%v: want ErrConfiguration, got %v", name, err)
		}
	}
}

func TestCreate(t *testing.T) {
	c := validConfig()
	g, step, err := c.Create()
	if err != nil {
		t.Fatal(err)
	}
	if !step.First() || step.Observation != gridworld.StartState {
		t.Errorf("unexpected first timestep %v", step)
	}
	if r, cols := g.Dims(); r != 4 || cols != 4 {
		t.Errorf("want 4 x 4 grid, got %d x %d", r, cols)
	}
	if !g.IsHole(5) || !g.IsHole(7) || !g.IsGoal(15) || g.IsGoal(5) {
		t.Error("terminal cells do not match the config")
	}
	if g.Rewards() != c.Rewards() {
		t.Errorf("want rewards %v, got %v", c.Rewards(), g.Rewards())
	}
}

func TestCreateInvalid(t *testing.T) {
	c := validConfig()
	c.Holes = []int{15}
	if _, _, err := c.Create(); !errors.Is(err, env.ErrConfiguration) {
		t.Errorf("want ErrConfiguration, got %v", err)
	}
}

func TestRenderMode(t *testing.T) {
	for _, m := range []RenderMode{"", None} {
		if m.Renders() {
			t.Errorf("mode %q should not render", m)
		}
	}
	for _, m := range []RenderMode{GIF, Human} {
		if !m.Renders() {
			t.Errorf("mode %q should render", m)
		}
	}
}

func TestCell(t *testing.T) {
	c := validConfig()
	c.CellSize = 0
	if c.Cell() != DefaultCellSize {
		t.Errorf("want default cell size %d, got %d", DefaultCellSize,
			c.Cell())
	}
}
