package experiment

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goalvshole/agent"
	env "github.com/samuelfneumann/goalvshole/environment"
)

// Rollout runs a single episode of p on e without learning, returning
// the outcome of the episode and the states visited, starting with the
// start state. The episode is truncated after maxSteps steps.
func Rollout(e env.Environment, p agent.Policy, maxSteps int) (Outcome,
	[]int, error) {
	if maxSteps < 1 {
		return Outcome{}, nil, errors.Wrapf(env.ErrConfiguration,
			"rollout: maxSteps must be positive, got %d", maxSteps)
	}
	limit := env.NewStepLimit(maxSteps)

	step := e.Reset()
	path := []int{step.Observation}
	var total float64
	for !limit.End(&step) {
		var err error
		step, _, err = e.Step(p.SelectAction(step))
		if err != nil {
			return Outcome{}, path, fmt.Errorf("rollout: %w", err)
		}
		total += step.Reward
		path = append(path, step.Observation)
	}

	return Outcome{Return: total, Steps: step.Number, End: step.End()},
		path, nil
}
