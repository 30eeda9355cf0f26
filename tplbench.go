// Package tplbench measures how long a template engine takes to render an
// HTML table compared with building the same markup by hand.
package tplbench

import (
	"io"
	"io/fs"

	"github.com/goliatone/go-tplbench/pkg/bench"
	"github.com/goliatone/go-tplbench/pkg/harness"
	"github.com/goliatone/go-tplbench/pkg/renderers/templated"
)

// Result aliases bench.Result for callers of the top-level package.
type Result = bench.Result

// Format aliases bench.Format.
type Format = bench.Format

// NewHarness exposes the harness constructor from the top-level module.
func NewHarness(options ...harness.Option) *harness.Harness {
	return harness.New(options...)
}

// Run benchmarks with the supplied options and returns one result per
// selected renderer, in selection order.
func Run(options ...harness.Option) ([]Result, error) {
	return harness.New(options...).Run()
}

// RunAndReport runs the benchmark and writes the report to w. Nothing is
// written when the run fails.
func RunAndReport(w io.Writer, format Format, options ...harness.Option) error {
	results, err := Run(options...)
	if err != nil {
		return err
	}
	return bench.WriteReport(w, results, format)
}

// EmbeddedTemplates exposes the bundled table templates so callers can reuse
// or extend them.
func EmbeddedTemplates() fs.FS {
	return templated.TemplatesFS()
}
