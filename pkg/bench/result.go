package bench

import "time"

// Result is the outcome of one renderer's timed loop.
type Result struct {
	Label               string        `json:"label" yaml:"label"`
	Iterations          int           `json:"iterations" yaml:"iterations"`
	TotalElapsedSeconds float64       `json:"totalElapsedSeconds" yaml:"totalElapsedSeconds"`
	MeanMillis          float64       `json:"meanMillisPerIteration" yaml:"meanMillisPerIteration"`
	Elapsed             time.Duration `json:"-" yaml:"-"`
}

// NewResult derives the mean from the elapsed time. iterations must be
// positive; Run guarantees it.
func NewResult(label string, elapsed time.Duration, iterations int) Result {
	seconds := elapsed.Seconds()
	return Result{
		Label:               label,
		Iterations:          iterations,
		TotalElapsedSeconds: seconds,
		MeanMillis:          seconds / float64(iterations) * 1000,
		Elapsed:             elapsed,
	}
}
