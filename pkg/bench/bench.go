package bench

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/goliatone/go-tplbench/pkg/bencherr"
)

// Entry is one renderer to benchmark. Setup is optional and runs before any
// entry is timed; Render is called once per iteration and its output
// discarded.
type Entry struct {
	Label  string
	Setup  func() error
	Render func() (string, error)
}

// Run benchmarks entries strictly in order and returns one Result per entry.
// Setup hooks and the preflight check all complete before the first timed
// call, so configuration problems never surface mid-benchmark.
func Run(entries []Entry, options ...Option) ([]Result, error) {
	cfg := config{
		iterations: DefaultIterations,
		warmup:     DefaultWarmup,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if err := validate(entries, cfg); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		if entry.Setup == nil {
			continue
		}
		if err := entry.Setup(); err != nil {
			if bencherr.IsKind(err) {
				return nil, fmt.Errorf("bench: setup %s: %w", entry.Label, err)
			}
			return nil, bencherr.Configuration(err, "bench: setup %s", entry.Label)
		}
	}

	if cfg.preflight != nil {
		if err := cfg.preflight(); err != nil {
			if bencherr.IsKind(err) {
				return nil, fmt.Errorf("bench: preflight: %w", err)
			}
			return nil, bencherr.Configuration(err, "bench: preflight")
		}
	}

	results := make([]Result, 0, len(entries))
	for _, entry := range entries {
		result, err := runEntry(entry, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

func validate(entries []Entry, cfg config) error {
	if cfg.iterations <= 0 {
		return bencherr.InvalidArgument("bench: iterations must be positive, got %d", cfg.iterations)
	}
	if cfg.warmup < 0 {
		return bencherr.InvalidArgument("bench: warmup must not be negative, got %d", cfg.warmup)
	}
	if len(entries) == 0 {
		return bencherr.InvalidArgument("bench: no renderers to run")
	}
	for i, entry := range entries {
		if entry.Label == "" {
			return bencherr.InvalidArgument("bench: entry %d has no label", i)
		}
		if entry.Render == nil {
			return bencherr.InvalidArgument("bench: entry %q has no render function", entry.Label)
		}
	}
	return nil
}

func runEntry(entry Entry, cfg config) (Result, error) {
	logger := cfg.logger.With("renderer", entry.Label)

	for i := 1; i <= cfg.warmup; i++ {
		if _, err := entry.Render(); err != nil {
			return Result{}, &bencherr.RenderError{Renderer: entry.Label, Err: fmt.Errorf("warm-up call %d: %w", i, err)}
		}
	}

	logger.Debug("timing renderer", "iterations", cfg.iterations, "warmup", cfg.warmup)

	start := cfg.now()
	for i := 1; i <= cfg.iterations; i++ {
		if _, err := entry.Render(); err != nil {
			logger.Error("render failed", "iteration", i, "error", err)
			return Result{}, &bencherr.RenderError{Renderer: entry.Label, Iteration: i, Err: err}
		}
	}
	elapsed := cfg.now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	result := NewResult(entry.Label, elapsed, cfg.iterations)
	logger.Debug("renderer finished", "elapsed", elapsed, "mean_ms", result.MeanMillis)
	return result, nil
}
