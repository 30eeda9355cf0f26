package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/goliatone/go-tplbench/pkg/bencherr"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"invalid argument", bencherr.InvalidArgument("rows must be positive"), ExitInvalidArg},
		{"configuration", bencherr.Configuration(errors.New("missing"), "load template"), ExitConfiguration},
		{"render", &bencherr.RenderError{Renderer: "template", Iteration: 3, Err: errors.New("boom")}, ExitRender},
		{"wrapped render", fmt.Errorf("bench: %w", &bencherr.RenderError{Renderer: "direct", Err: errors.New("boom")}), ExitRender},
		{"unexpected", errors.New("disk on fire"), ExitUnexpected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ExitCode(tc.err); got != tc.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}
