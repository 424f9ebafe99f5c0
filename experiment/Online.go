package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goalvshole/agent"
	env "github.com/samuelfneumann/goalvshole/environment"
	"github.com/samuelfneumann/goalvshole/experiment/checkpointer"
	"github.com/samuelfneumann/goalvshole/experiment/tracker"
	ts "github.com/samuelfneumann/goalvshole/timestep"
)

// Online is an Experiment that trains an agent online only. No offline
// evaluation is performed.
//
// Episodes are run until MaxEpisodes episodes have finished or the
// agent has reached a goal MaxWins times, whichever happens first.
// Each episode is truncated after MaxEpisodeSteps steps.
type Online struct {
	environment   env.Environment
	agent         agent.Tabular
	limits        Limits
	ender         env.StepLimit
	episodes      int
	wins          int
	losses        int
	truncations   int
	trackers      []tracker.Tracker
	checkpointers []checkpointer.Checkpointer
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The t parameter is a slice of
// tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Tabular, limits Limits,
	t ...tracker.Tracker) (*Online, error) {
	if limits.MaxEpisodes < 1 || limits.MaxWins < 1 ||
		limits.MaxEpisodeSteps < 1 {
		return nil, errors.Wrapf(env.ErrConfiguration,
			"newOnline: all limits must be positive, got %+v", limits)
	}

	return &Online{
		environment: e,
		agent:       a,
		limits:      limits,
		ender:       env.NewStepLimit(limits.MaxEpisodeSteps),
		trackers:    t,
	}, nil
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RegisterCheckpointer registers a checkpointer which is called after
// every finished episode
func (o *Online) RegisterCheckpointer(c checkpointer.Checkpointer) {
	o.checkpointers = append(o.checkpointers, c)
}

// Done returns whether either of the experiment's limits has been
// reached
func (o *Online) Done() bool {
	return o.episodes >= o.limits.MaxEpisodes || o.wins >= o.limits.MaxWins
}

// RunEpisode runs a single episode of the experiment. The episode ends
// when the agent enters a hole or a goal or when the step limit is
// reached. An error is returned if the agent selects an action the
// environment rejects, in which case the episode is abandoned and not
// counted.
func (o *Online) RunEpisode() (Outcome, error) {
	episode := o.episodes + 1
	epsilon := o.epsilon()

	step := o.environment.Reset()
	if err := o.agent.ObserveFirst(step); err != nil {
		return Outcome{}, fmt.Errorf("runEpisode: %w", err)
	}
	var total float64
	o.track(tracker.Snapshot{Episode: episode, Step: step, Wins: o.wins,
		Epsilon: epsilon})

	for !step.Last() {
		action := o.agent.SelectAction(step)

		var err error
		step, _, err = o.environment.Step(action)
		if err != nil {
			return Outcome{}, errors.Wrapf(err, "runEpisode: episode %d",
				episode)
		}
		o.ender.End(&step)

		if err := o.agent.Observe(action, step); err != nil {
			return Outcome{}, fmt.Errorf("runEpisode: %w", err)
		}
		if err := o.agent.Step(); err != nil {
			return Outcome{}, fmt.Errorf("runEpisode: %w", err)
		}
		total += step.Reward

		if step.Last() {
			o.classify(step.End())
		}
		o.track(tracker.Snapshot{Episode: episode, Step: step,
			Return: total, Wins: o.wins, Epsilon: epsilon})
	}

	o.episodes++
	o.agent.EndEpisode()

	for _, c := range o.checkpointers {
		if err := c.Checkpoint(o.episodes); err != nil {
			return Outcome{}, errors.Wrap(err, "runEpisode: checkpoint")
		}
	}

	outcome := Outcome{Return: total, Steps: step.Number, End: step.End()}
	slog.Debug("episode finished", "episode", episode, "end", outcome.End,
		"steps", outcome.Steps, "return", total, "wins", o.wins,
		"epsilon", epsilon)
	return outcome, nil
}

// classify folds the way an episode ended into the running counts
func (o *Online) classify(end ts.EndType) {
	switch end {
	case ts.Goal:
		o.wins++
	case ts.Hole:
		o.losses++
	default:
		o.truncations++
	}
}

// Run runs episodes until the experiment is done. The context is only
// checked between episodes; if it is cancelled, Run returns the
// partial result together with the context's error.
func (o *Online) Run(ctx context.Context) (Result, error) {
	slog.Info("training started", "max_episodes", o.limits.MaxEpisodes,
		"max_wins", o.limits.MaxWins,
		"max_episode_steps", o.limits.MaxEpisodeSteps)

	for !o.Done() {
		if err := ctx.Err(); err != nil {
			slog.Warn("training cancelled", "episode", o.episodes,
				"wins", o.wins)
			return o.Result(), err
		}
		if _, err := o.RunEpisode(); err != nil {
			return o.Result(), err
		}
	}

	if o.wins >= o.limits.MaxWins {
		slog.Info("maximum wins reached", "wins", o.wins,
			"episode", o.episodes)
	}
	result := o.Result()
	slog.Info("training finished", "episodes", result.Episodes,
		"wins", result.Wins, "losses", result.Losses,
		"truncations", result.Truncations, "epsilon", result.Epsilon)
	return result, nil
}

// Result returns a summary of all episodes run so far
func (o *Online) Result() Result {
	return Result{
		Episodes:    o.episodes,
		Wins:        o.wins,
		Losses:      o.losses,
		Truncations: o.truncations,
		Epsilon:     o.epsilon(),
		QTable:      o.agent.Table(),
	}
}

// Save saves the data cached by the Trackers to disk
func (o *Online) Save() error {
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			return errors.Wrap(err, "save")
		}
	}
	return nil
}

// epsilon returns the exploration rate of the agent, or 0 if the agent
// does not explore
func (o *Online) epsilon() float64 {
	if e, ok := o.agent.(agent.Explorer); ok {
		return e.Epsilon()
	}
	return 0
}

// track sends a snapshot of the current timestep to each tracker
func (o *Online) track(s tracker.Snapshot) {
	for _, t := range o.trackers {
		t.Track(s)
	}
}
