package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-tplbench/pkg/render"
	"github.com/goliatone/go-tplbench/pkg/renderers/direct"
	"github.com/goliatone/go-tplbench/pkg/renderers/templated"
	"github.com/goliatone/go-tplbench/pkg/table"
)

func main() {
	var (
		rendererName = flag.String("renderer", "direct", "renderer to snapshot")
		rows         = flag.Int("rows", 2, "table rows")
		columns      = flag.Int("columns", 3, "table columns")
		outputPath   = flag.String("output", "pkg/renderers/direct/testdata/small.golden", "output path for the rendered table")
	)
	flag.Parse()

	if err := run(*rendererName, *rows, *columns, *outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "generate-table-snapshot: %v\n", err)
		os.Exit(1)
	}
}

func run(name string, rows, columns int, outputPath string) error {
	registry := render.NewRegistry()
	for _, r := range direct.All() {
		registry.MustRegister(r)
	}
	tpl, err := templated.New()
	if err != nil {
		return err
	}
	registry.MustRegister(tpl)

	renderer, err := registry.Get(name)
	if err != nil {
		return err
	}
	if err := render.Prepare(renderer); err != nil {
		return err
	}

	tbl, err := generate(rows, columns)
	if err != nil {
		return err
	}
	out, err := renderer.Render(tbl)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d bytes)\n", outputPath, len(out))
	return nil
}

// generate numbers cells row-major so each value is distinct.
func generate(rows, columns int) (table.Table, error) {
	tbl, err := table.Generate(rows, table.DefaultColumns(columns))
	if err != nil {
		return nil, err
	}
	for i := range tbl {
		for j := range tbl[i].Cells {
			tbl[i].Cells[j].Value = i*columns + j + 1
		}
	}
	return tbl, nil
}
