package bench

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/goliatone/go-tplbench/pkg/bencherr"
)

type counter struct {
	calls  int
	failOn int
	err    error
}

func (c *counter) render() (string, error) {
	c.calls++
	if c.err != nil && c.calls == c.failOn {
		return "", c.err
	}
	return "<table></table>", nil
}

// fakeClock advances by step on every call.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunInvokesEachRendererExactlyN(t *testing.T) {
	direct, templated := &counter{}, &counter{}

	results, err := Run([]Entry{
		{Label: "direct", Render: direct.render},
		{Label: "template", Render: templated.render},
	}, WithIterations(7), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if direct.calls != 7 || templated.calls != 7 {
		t.Fatalf("expected 7 calls each, got direct=%d template=%d", direct.calls, templated.calls)
	}
	if len(results) != 2 || results[0].Label != "direct" || results[1].Label != "template" {
		t.Fatalf("unexpected results %+v", results)
	}
	for _, r := range results {
		if r.Iterations != 7 {
			t.Fatalf("%s: expected 7 iterations, got %d", r.Label, r.Iterations)
		}
		if r.MeanMillis < 0 || r.TotalElapsedSeconds < 0 {
			t.Fatalf("%s: negative timing %+v", r.Label, r)
		}
	}
}

func TestRunComputesMeanFromClock(t *testing.T) {
	results, err := Run(
		[]Entry{{Label: "direct", Render: (&counter{}).render}},
		WithIterations(4),
		WithClock(fakeClock(20*time.Millisecond)),
		WithLogger(quietLogger()),
	)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	got := results[0]
	if got.Elapsed != 20*time.Millisecond {
		t.Fatalf("expected 20ms elapsed, got %s", got.Elapsed)
	}
	if math.Abs(got.MeanMillis-5) > 1e-9 {
		t.Fatalf("expected 5ms mean, got %v", got.MeanMillis)
	}
	if math.Abs(got.TotalElapsedSeconds-0.02) > 1e-12 {
		t.Fatalf("expected 0.02s total, got %v", got.TotalElapsedSeconds)
	}
}

func TestRunRunsEntriesSequentially(t *testing.T) {
	var order []string
	entry := func(label string) Entry {
		return Entry{Label: label, Render: func() (string, error) {
			order = append(order, label)
			return "", nil
		}}
	}

	if _, err := Run([]Entry{entry("a"), entry("b")}, WithIterations(2), WithLogger(quietLogger())); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{"a", "a", "b", "b"}
	if len(order) != len(want) {
		t.Fatalf("unexpected call order %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("entries must not interleave, got %v", order)
		}
	}
}

func TestRunRejectsInvalidArguments(t *testing.T) {
	c := &counter{}
	valid := []Entry{{Label: "direct", Render: c.render}}

	cases := map[string]struct {
		entries []Entry
		opts    []Option
	}{
		"zero iterations":     {valid, []Option{WithIterations(0)}},
		"negative iterations": {valid, []Option{WithIterations(-3)}},
		"negative warmup":     {valid, []Option{WithWarmup(-1)}},
		"no entries":          {nil, nil},
		"missing label":       {[]Entry{{Render: c.render}}, nil},
		"missing render":      {[]Entry{{Label: "x"}}, nil},
	}
	for name, tc := range cases {
		results, err := Run(tc.entries, append(tc.opts, WithLogger(quietLogger()))...)
		if !errors.Is(err, bencherr.ErrInvalidArgument) {
			t.Fatalf("%s: expected ErrInvalidArgument, got %v", name, err)
		}
		if results != nil {
			t.Fatalf("%s: expected no results, got %+v", name, results)
		}
	}
	if c.calls != 0 {
		t.Fatalf("renderers must not run on invalid input, got %d calls", c.calls)
	}
}

func TestRunSetupFailsBeforeAnyIteration(t *testing.T) {
	direct := &counter{}
	templated := &counter{}
	missing := errors.New("template not found")

	_, err := Run([]Entry{
		{Label: "direct", Render: direct.render},
		{Label: "template", Render: templated.render, Setup: func() error { return missing }},
	}, WithLogger(quietLogger()))

	if !errors.Is(err, bencherr.ErrConfiguration) || !errors.Is(err, missing) {
		t.Fatalf("expected configuration error wrapping cause, got %v", err)
	}
	if direct.calls != 0 || templated.calls != 0 {
		t.Fatalf("no renderer may run after a setup failure, got direct=%d template=%d", direct.calls, templated.calls)
	}
}

func TestRunSetupKeepsExistingKind(t *testing.T) {
	_, err := Run([]Entry{{
		Label:  "template",
		Render: (&counter{}).render,
		Setup:  func() error { return bencherr.InvalidArgument("bad template name") },
	}}, WithLogger(quietLogger()))

	if !errors.Is(err, bencherr.ErrInvalidArgument) || errors.Is(err, bencherr.ErrConfiguration) {
		t.Fatalf("expected the setup error kind to be preserved, got %v", err)
	}
}

func TestRunAbortsOnRenderFailure(t *testing.T) {
	boom := errors.New("boom")
	failing := &counter{failOn: 3, err: boom}
	after := &counter{}

	results, err := Run([]Entry{
		{Label: "template", Render: failing.render},
		{Label: "direct", Render: after.render},
	}, WithIterations(10), WithLogger(quietLogger()))

	if !errors.Is(err, bencherr.ErrRender) || !errors.Is(err, boom) {
		t.Fatalf("expected render error wrapping cause, got %v", err)
	}
	var re *bencherr.RenderError
	if !errors.As(err, &re) || re.Renderer != "template" || re.Iteration != 3 {
		t.Fatalf("expected failure on template iteration 3, got %#v", re)
	}
	if results != nil {
		t.Fatalf("no partial results expected, got %+v", results)
	}
	if failing.calls != 3 {
		t.Fatalf("failed renderer must not be retried, got %d calls", failing.calls)
	}
	if after.calls != 0 {
		t.Fatalf("remaining renderers must not run, got %d calls", after.calls)
	}
}

func TestRunWarmupIsUntimed(t *testing.T) {
	c := &counter{}
	clockCalls := 0
	clock := func() time.Time {
		clockCalls++
		return time.Unix(int64(clockCalls), 0)
	}

	results, err := Run([]Entry{{Label: "direct", Render: c.render}},
		WithIterations(5), WithWarmup(2), WithClock(clock), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if c.calls != 7 {
		t.Fatalf("expected 2 warm-up + 5 timed calls, got %d", c.calls)
	}
	if results[0].Iterations != 5 {
		t.Fatalf("warm-up calls must not count as iterations, got %d", results[0].Iterations)
	}
	if clockCalls != 2 {
		t.Fatalf("expected the clock to be read twice, got %d", clockCalls)
	}
}

func TestRunWarmupFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run([]Entry{{Label: "direct", Render: (&counter{failOn: 1, err: boom}).render}},
		WithWarmup(1), WithLogger(quietLogger()))

	var re *bencherr.RenderError
	if !errors.As(err, &re) || re.Iteration != 0 || !errors.Is(err, boom) {
		t.Fatalf("expected warm-up render error, got %v", err)
	}
}

func TestRunClampsBackwardsClock(t *testing.T) {
	results, err := Run([]Entry{{Label: "direct", Render: (&counter{}).render}},
		WithClock(fakeClock(-time.Second)), WithLogger(quietLogger()))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if results[0].MeanMillis != 0 {
		t.Fatalf("expected negative elapsed to clamp to zero, got %v", results[0].MeanMillis)
	}
}

func TestRunPreflightRunsAfterSetupBeforeTiming(t *testing.T) {
	var steps []string
	c := &counter{}
	entry := Entry{
		Label:  "direct",
		Setup:  func() error { steps = append(steps, "setup"); return nil },
		Render: func() (string, error) { steps = append(steps, "render"); return c.render() },
	}

	_, err := Run([]Entry{entry}, WithIterations(1), WithLogger(quietLogger()),
		WithPreflight(func() error { steps = append(steps, "preflight"); return nil }))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	want := []string{"setup", "preflight", "render"}
	if len(steps) != len(want) {
		t.Fatalf("unexpected steps %v", steps)
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Fatalf("unexpected steps %v", steps)
		}
	}
}

func TestRunPreflightFailure(t *testing.T) {
	c := &counter{}
	mismatch := errors.New("cells differ")

	_, err := Run([]Entry{{Label: "direct", Render: c.render}}, WithLogger(quietLogger()),
		WithPreflight(func() error { return mismatch }))
	if !errors.Is(err, bencherr.ErrConfiguration) || !errors.Is(err, mismatch) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if c.calls != 0 {
		t.Fatalf("no timed call may happen after a failed preflight, got %d", c.calls)
	}

	_, err = Run([]Entry{{Label: "direct", Render: c.render}}, WithLogger(quietLogger()),
		WithPreflight(func() error { return &bencherr.RenderError{Renderer: "template", Err: mismatch} }))
	if !errors.Is(err, bencherr.ErrRender) {
		t.Fatalf("expected render kind to be preserved, got %v", err)
	}
}
