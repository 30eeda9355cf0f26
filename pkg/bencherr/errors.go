// Package bencherr defines the error kinds shared by the benchmark packages.
// Every kind is terminal: callers classify with errors.Is and abort the run.
package bencherr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument signals a non-positive iteration count, a negative
	// row count, or an otherwise malformed request.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConfiguration signals a startup failure such as a template that
	// cannot be located or compiled.
	ErrConfiguration = errors.New("configuration error")
	// ErrRender signals a renderer failure inside the timed loop.
	ErrRender = errors.New("render error")
	// ErrUnrenderable is returned when a cell value has no text form.
	ErrUnrenderable = errors.New("value is not representable as text")
)

// InvalidArgument formats a message and wraps it with ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Configuration wraps err with ErrConfiguration and a short description. A nil
// err yields a plain configuration error carrying only the message.
func Configuration(err error, format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if err == nil {
		return fmt.Errorf("%w: %s", ErrConfiguration, msg)
	}
	return fmt.Errorf("%w: %s: %w", ErrConfiguration, msg, err)
}

// IsKind reports whether err already carries one of the benchmark error
// kinds.
func IsKind(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrConfiguration) || errors.Is(err, ErrRender)
}

// RenderError records which renderer failed and on which iteration. Iteration
// is 1-based; zero means the failure happened outside the timed loop.
type RenderError struct {
	Renderer  string
	Iteration int
	Err       error
}

func (e *RenderError) Error() string {
	if e.Iteration > 0 {
		return fmt.Sprintf("render error: %s failed on iteration %d: %v", e.Renderer, e.Iteration, e.Err)
	}
	return fmt.Sprintf("render error: %s: %v", e.Renderer, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Is reports ErrRender so callers need not type-assert.
func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}
