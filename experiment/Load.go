package experiment

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goalvshole/agent/tabular/qlearning"
	"github.com/samuelfneumann/goalvshole/environment"
	"github.com/samuelfneumann/goalvshole/environment/envconfig"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v2"
)

// envSection is the [ENV] section of a configuration file
type envSection struct {
	envconfig.Config `yaml:",inline" ini:"-"`
	MaxEpisodeSteps  int `json:"max_episode_steps" yaml:"max_episode_steps" ini:"max_episode_steps"`
}

// agentSection is the [AGENT] section of a configuration file. As in
// env.ini files, the run limits are kept alongside the agent's
// hyperparameters.
type agentSection struct {
	qlearning.Config `yaml:",inline" ini:"-"`
	MaxEpisodes      int    `json:"total_episode_count" yaml:"total_episode_count" ini:"total_episode_count"`
	MaxWins          int    `json:"max_wins" yaml:"max_wins" ini:"max_wins"`
	MaxGifs          int    `json:"max_gifs" yaml:"max_gifs" ini:"max_gifs"`
	Seed             uint64 `json:"seed" yaml:"seed" ini:"seed"`
}

// document is the layout shared by every supported file format
type document struct {
	Env   envSection   `json:"env" yaml:"env"`
	Agent agentSection `json:"agent" yaml:"agent"`
}

// required lists, per section, the keys a configuration file must
// supply. All other keys take their default values when absent.
var required = map[string][]string{
	"env": {"grid_size", "holes", "goals", "reward_hole", "reward_goal",
		"reward_non_terminal"},
	"agent": {"alpha", "gamma", "epsilon", "epsilon_decay",
		"total_episode_count", "max_wins", "max_gifs"},
}

// presence records which keys were found in each section of a file
type presence map[string]map[string]bool

// missing returns the first required key absent from p, formatted as
// section.key, or the empty string if none is absent
func (p presence) missing() string {
	for _, section := range []string{"env", "agent"} {
		for _, key := range required[section] {
			if !p[section][key] {
				return section + "." + key
			}
		}
	}
	return ""
}

func newDocument() document {
	var d document
	d.Env.CellSize = envconfig.DefaultCellSize
	d.Env.MaxEpisodeSteps = DefaultMaxEpisodeSteps
	d.Agent.Seed = DefaultSeed
	return d
}

func (d document) config() Config {
	return Config{
		EnvConf:         d.Env.Config,
		AgentConf:       d.Agent.Config,
		MaxEpisodes:     d.Agent.MaxEpisodes,
		MaxWins:         d.Agent.MaxWins,
		MaxEpisodeSteps: d.Env.MaxEpisodeSteps,
		MaxGifs:         d.Agent.MaxGifs,
		Seed:            d.Agent.Seed,
	}
}

// Load reads an experiment Config from path. The decoder is chosen by
// the file extension: .ini (the [ENV]/[AGENT] layout of env.ini),
// .yaml/.yml or .json. Unknown keys and missing required keys are
// errors; optional keys missing from the file take their default
// values. The returned Config has been validated.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load: could not read %v", path)
	}

	doc := newDocument()
	var found presence
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ini":
		found, err = decodeINI(data, &doc)
	case ".yaml", ".yml":
		found, err = decodeYAML(data, &doc)
	case ".json":
		found, err = decodeJSON(data, &doc)
	default:
		return Config{}, errors.Wrapf(environment.ErrConfiguration,
			"load: unsupported configuration format %q", ext)
	}
	if err != nil {
		return Config{}, errors.Wrapf(environment.ErrConfiguration,
			"load: could not decode %v: %v", path, err)
	}
	if key := found.missing(); key != "" {
		return Config{}, errors.Wrapf(environment.ErrConfiguration,
			"load: %v: missing required key %v", path, key)
	}

	c := doc.config()
	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "load: %v", path)
	}
	return c, nil
}

// decodeYAML decodes a YAML document onto doc, rejecting unknown keys
func decodeYAML(data []byte, doc *document) (presence, error) {
	if err := yaml.UnmarshalStrict(data, doc); err != nil {
		return nil, err
	}

	var raw map[string]map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	found := make(presence)
	for section, keys := range raw {
		found[section] = make(map[string]bool)
		for key := range keys {
			found[section][key] = true
		}
	}
	return found, nil
}

// decodeJSON decodes a JSON document onto doc, rejecting unknown keys
func decodeJSON(data []byte, doc *document) (presence, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(doc); err != nil {
		return nil, err
	}

	var raw map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	found := make(presence)
	for section, keys := range raw {
		found[section] = make(map[string]bool)
		for key := range keys {
			found[section][key] = true
		}
	}
	return found, nil
}

// decodeINI maps the ENV and AGENT sections of an INI file onto doc
func decodeINI(data []byte, doc *document) (presence, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	for _, name := range []string{"ENV", "AGENT"} {
		if !file.HasSection(name) {
			return nil, errors.Errorf("missing section [%v]", name)
		}
	}

	env, agent := file.Section("ENV"), file.Section("AGENT")
	targets := []struct {
		section *ini.Section
		value   interface{}
	}{
		{env, &doc.Env.Config},
		{env, &doc.Env},
		{agent, &doc.Agent.Config},
		{agent, &doc.Agent},
	}
	for _, t := range targets {
		if err := t.section.StrictMapTo(t.value); err != nil {
			return nil, errors.Wrapf(err, "section [%v]", t.section.Name())
		}
	}

	found := make(presence)
	for _, section := range []*ini.Section{env, agent} {
		name := strings.ToLower(section.Name())
		found[name] = make(map[string]bool)
		for _, key := range required[name] {
			found[name][key] = section.HasKey(key)
		}
	}
	return found, nil
}
