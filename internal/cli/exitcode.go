package cli

import (
	"errors"

	"github.com/goliatone/go-tplbench/pkg/bencherr"
)

const (
	ExitOK            = 0
	ExitUnexpected    = 1
	ExitInvalidArg    = 2
	ExitConfiguration = 3
	ExitRender        = 4
)

// ExitCode maps a command error to a stable process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, bencherr.ErrInvalidArgument):
		return ExitInvalidArg
	case errors.Is(err, bencherr.ErrConfiguration):
		return ExitConfiguration
	case errors.Is(err, bencherr.ErrRender):
		return ExitRender
	default:
		return ExitUnexpected
	}
}
