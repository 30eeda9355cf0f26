package bench

import (
	"log/slog"
	"time"
)

const (
	DefaultIterations = 10
	DefaultWarmup     = 0
)

// Option configures a Run.
type Option func(*config)

type config struct {
	iterations int
	warmup     int
	logger     *slog.Logger
	now        func() time.Time
	preflight  func() error
}

// WithIterations sets the number of timed calls per entry.
func WithIterations(n int) Option {
	return func(cfg *config) {
		cfg.iterations = n
	}
}

// WithWarmup sets the number of untimed calls made before each entry's timed
// loop. Zero (the default) measures from the very first call.
func WithWarmup(n int) Option {
	return func(cfg *config) {
		cfg.warmup = n
	}
}

// WithLogger routes progress logging.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithClock replaces time.Now. The clock must be monotonic; time.Now is.
func WithClock(now func() time.Time) Option {
	return func(cfg *config) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithPreflight registers a check that runs after every Setup and before the
// first timed call, e.g. verifying that renderers agree on their output.
func WithPreflight(fn func() error) Option {
	return func(cfg *config) {
		cfg.preflight = fn
	}
}
