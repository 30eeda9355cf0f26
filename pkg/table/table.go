package table

import (
	"github.com/goliatone/go-tplbench/pkg/bencherr"
)

// Column is one entry of a column spec: the key and the value every generated
// row carries for it.
type Column struct {
	Key   string
	Value any
}

// Cell is a rendered column within a row. Field names are exported so
// template engines can resolve them by reflection.
type Cell struct {
	Key   string
	Value any
}

// Row maps column keys to values while preserving insertion order.
type Row struct {
	Cells []Cell
}

// Table is an ordered sequence of rows.
type Table []Row

// Len returns the number of cells in the row.
func (r Row) Len() int {
	return len(r.Cells)
}

// Keys returns the column keys in order.
func (r Row) Keys() []string {
	keys := make([]string, len(r.Cells))
	for i, cell := range r.Cells {
		keys[i] = cell.Key
	}
	return keys
}

// Values returns the cell values in column order.
func (r Row) Values() []any {
	values := make([]any, len(r.Cells))
	for i, cell := range r.Cells {
		values[i] = cell.Value
	}
	return values
}

// Get looks up a value by column key.
func (r Row) Get(key string) (any, bool) {
	for _, cell := range r.Cells {
		if cell.Key == key {
			return cell.Value, true
		}
	}
	return nil, false
}

// Generate builds a table with rowCount rows, each an independent copy of
// columns. An empty column spec is legal and yields empty rows.
func Generate(rowCount int, columns []Column) (Table, error) {
	if rowCount < 0 {
		return nil, bencherr.InvalidArgument("table: row count must not be negative, got %d", rowCount)
	}

	tbl := make(Table, rowCount)
	for i := range tbl {
		cells := make([]Cell, len(columns))
		for j, col := range columns {
			cells[j] = Cell{Key: col.Key, Value: col.Value}
		}
		tbl[i] = Row{Cells: cells}
	}
	return tbl, nil
}

// MustGenerate is Generate for fixtures; it panics on invalid input.
func MustGenerate(rowCount int, columns []Column) Table {
	tbl, err := Generate(rowCount, columns)
	if err != nil {
		panic(err)
	}
	return tbl
}

// DefaultColumns returns n columns keyed a, b, ... z, aa, ab, ... with values
// 1..n. DefaultColumns(10) gives the classic a=1 through j=10 row.
func DefaultColumns(n int) []Column {
	if n <= 0 {
		return nil
	}
	columns := make([]Column, n)
	for i := range columns {
		columns[i] = Column{Key: ColumnKey(i), Value: i + 1}
	}
	return columns
}

// ColumnKey converts a zero-based index into a spreadsheet style key.
func ColumnKey(index int) string {
	if index < 0 {
		return ""
	}
	var buf []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		buf = append([]byte{byte('a' + (n-1)%26)}, buf...)
	}
	return string(buf)
}
