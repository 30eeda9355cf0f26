// Package verify checks that two renderers produced the same table by
// comparing the text of every cell, ignoring markup whitespace.
package verify

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Cells tokenises an HTML fragment and returns, for each <tr>, the trimmed
// text of its <td> cells in document order. Entities are decoded.
func Cells(fragment string) ([][]string, error) {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var (
		rows   [][]string
		row    []string
		inRow  bool
		inCell bool
		text   strings.Builder
	)

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("verify: tokenize: %w", err)
			}
			if inRow {
				rows = append(rows, row)
			}
			return rows, nil
		case html.StartTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Tr:
				if inRow {
					rows = append(rows, row)
				}
				row, inRow = []string{}, true
			case atom.Td:
				inCell = true
				text.Reset()
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Td:
				if inCell {
					row = append(row, strings.TrimSpace(text.String()))
					inCell = false
				}
			case atom.Tr:
				if inRow {
					rows = append(rows, row)
					row, inRow = nil, false
				}
			}
		case html.TextToken:
			if inCell {
				text.Write(z.Text())
			}
		}
	}
}

// Equivalent reports an error describing the first difference between the
// cell grids of want and got.
func Equivalent(want, got string) error {
	wantCells, err := Cells(want)
	if err != nil {
		return err
	}
	gotCells, err := Cells(got)
	if err != nil {
		return err
	}

	if len(wantCells) != len(gotCells) {
		return fmt.Errorf("verify: row count differs: want %d, got %d", len(wantCells), len(gotCells))
	}
	for i := range wantCells {
		if len(wantCells[i]) != len(gotCells[i]) {
			return fmt.Errorf("verify: row %d cell count differs: want %d, got %d", i, len(wantCells[i]), len(gotCells[i]))
		}
		for j := range wantCells[i] {
			if wantCells[i][j] != gotCells[i][j] {
				return fmt.Errorf("verify: row %d cell %d differs: want %q, got %q", i, j, wantCells[i][j], gotCells[i][j])
			}
		}
	}
	return nil
}
