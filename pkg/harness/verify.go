package harness

import (
	"github.com/goliatone/go-tplbench/pkg/bencherr"
	"github.com/goliatone/go-tplbench/pkg/render"
	"github.com/goliatone/go-tplbench/pkg/table"
	"github.com/goliatone/go-tplbench/pkg/verify"
)

// sampleRows bounds how much of the benchmark table is rendered during
// verification.
const sampleRows = 3

// verificationTable is a 2x3 fixture with distinct values so column order
// mistakes show up.
func verificationTable() table.Table {
	return table.Table{
		{Cells: []table.Cell{{Key: "a", Value: 1}, {Key: "b", Value: 2}, {Key: "c", Value: 3}}},
		{Cells: []table.Cell{{Key: "a", Value: 4}, {Key: "b", Value: 5}, {Key: "c", Value: 6}}},
	}
}

// verifyRenderers renders the fixed fixture and the leading rows of the
// benchmark table with every renderer, comparing each result against the
// first renderer's. The sample catches value types the engines format
// differently, such as bools and floats.
func verifyRenderers(renderers []render.Renderer, tbl table.Table) error {
	if len(renderers) < 2 {
		return nil
	}
	sample := tbl
	if len(sample) > sampleRows {
		sample = sample[:sampleRows]
	}

	for _, fixture := range []table.Table{verificationTable(), sample} {
		if err := compareOutputs(renderers, fixture); err != nil {
			return err
		}
	}
	return nil
}

func compareOutputs(renderers []render.Renderer, fixture table.Table) error {
	reference, err := renderers[0].Render(fixture)
	if err != nil {
		return &bencherr.RenderError{Renderer: renderers[0].Name(), Err: err}
	}
	for _, r := range renderers[1:] {
		out, err := r.Render(fixture)
		if err != nil {
			return &bencherr.RenderError{Renderer: r.Name(), Err: err}
		}
		if err := verify.Equivalent(reference, out); err != nil {
			return bencherr.Configuration(err, "harness: %s output disagrees with %s", r.Name(), renderers[0].Name())
		}
	}
	return nil
}
