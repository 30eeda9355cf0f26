package direct

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/goliatone/go-tplbench/pkg/render"
	"github.com/goliatone/go-tplbench/pkg/table"
)

// Strategy selects how output fragments are accumulated.
type Strategy int

const (
	StrategyBuilder Strategy = iota
	StrategyBuffer
	StrategyJoin
)

// Name returns the registry name for the strategy.
func (s Strategy) Name() string {
	switch s {
	case StrategyBuffer:
		return "direct-buffer"
	case StrategyJoin:
		return "direct-join"
	default:
		return "direct"
	}
}

const (
	tableOpen  = "<table>\n"
	tableClose = "</table>\n"
	rowOpen    = "<tr>\n"
	rowClose   = "</tr>\n"
	cellOpen   = "<td>"
	cellClose  = "</td>\n"
)

// Renderer is a render.Renderer that builds the table markup directly.
type Renderer struct {
	strategy Strategy
}

var _ render.Renderer = (*Renderer)(nil)

// New returns a direct renderer using the given strategy.
func New(strategy Strategy) *Renderer {
	return &Renderer{strategy: strategy}
}

// All returns one renderer per strategy, default first.
func All() []*Renderer {
	return []*Renderer{New(StrategyBuilder), New(StrategyBuffer), New(StrategyJoin)}
}

func (r *Renderer) Name() string {
	return r.strategy.Name()
}

func (r *Renderer) ContentType() string {
	return render.ContentTypeHTML
}

// Render builds the HTML table. Each call starts from an empty buffer.
func (r *Renderer) Render(tbl table.Table) (string, error) {
	switch r.strategy {
	case StrategyBuffer:
		return renderBuffer(tbl)
	case StrategyJoin:
		return renderJoin(tbl)
	default:
		return Render(tbl)
	}
}

// Render is the straight-line strings.Builder rendition. Whatever has been
// written so far is returned alongside an error.
func Render(tbl table.Table) (string, error) {
	var b strings.Builder
	b.Grow(estimateSize(tbl))

	b.WriteString(tableOpen)
	for i, row := range tbl {
		b.WriteString(rowOpen)
		for j, cell := range row.Cells {
			text, err := FormatValue(cell.Value)
			if err != nil {
				return b.String(), cellError(i, j, cell, err)
			}
			b.WriteString(cellOpen)
			b.WriteString(text)
			b.WriteString(cellClose)
		}
		b.WriteString(rowClose)
	}
	b.WriteString(tableClose)
	return b.String(), nil
}

func renderBuffer(tbl table.Table) (string, error) {
	var buf bytes.Buffer
	buf.Grow(estimateSize(tbl))

	buf.WriteString(tableOpen)
	for i, row := range tbl {
		buf.WriteString(rowOpen)
		for j, cell := range row.Cells {
			text, err := FormatValue(cell.Value)
			if err != nil {
				return buf.String(), cellError(i, j, cell, err)
			}
			buf.WriteString(cellOpen)
			buf.WriteString(text)
			buf.WriteString(cellClose)
		}
		buf.WriteString(rowClose)
	}
	buf.WriteString(tableClose)
	return buf.String(), nil
}

func renderJoin(tbl table.Table) (string, error) {
	parts := make([]string, 0, 2+len(tbl)*2+countCells(tbl)*3)

	parts = append(parts, tableOpen)
	for i, row := range tbl {
		parts = append(parts, rowOpen)
		for j, cell := range row.Cells {
			text, err := FormatValue(cell.Value)
			if err != nil {
				return strings.Join(parts, ""), cellError(i, j, cell, err)
			}
			parts = append(parts, cellOpen, text, cellClose)
		}
		parts = append(parts, rowClose)
	}
	parts = append(parts, tableClose)
	return strings.Join(parts, ""), nil
}

func cellError(row, col int, cell table.Cell, err error) error {
	return fmt.Errorf("direct: row %d column %d (%q): %w", row, col, cell.Key, err)
}

func countCells(tbl table.Table) int {
	n := 0
	for _, row := range tbl {
		n += len(row.Cells)
	}
	return n
}

// estimateSize assumes short numeric cells; it only sizes the first grow.
func estimateSize(tbl table.Table) int {
	return len(tableOpen) + len(tableClose) +
		len(tbl)*(len(rowOpen)+len(rowClose)) +
		countCells(tbl)*(len(cellOpen)+len(cellClose)+4)
}
