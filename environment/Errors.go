package environment

import "github.com/pkg/errors"

// ErrInvalidAction is returned when an action outside of an
// environment's action Spec is taken. It signals a programming error
// in the caller rather than a recoverable condition.
var ErrInvalidAction = errors.New("invalid action")

// ErrConfiguration is wrapped by every configuration validation error
// so that callers can detect bad configurations with errors.Is.
var ErrConfiguration = errors.New("invalid configuration")
