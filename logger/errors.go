package logger

import "errors"

var (
	// ErrUnknownLevel is returned when a level name cannot be parsed.
	ErrUnknownLevel = errors.New("unknown log level")
	// ErrEnvVariablesNotValid is returned by LoadEnvConfig when the environment cannot be parsed.
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
)
