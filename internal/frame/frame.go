// Package frame provides the small in-memory table that connectors
// materialize fetched data into, plus column-level cleanup, missing-value
// handling, validation rules, and CSV/parquet encode and decode.
package frame

import (
	"fmt"
	"sort"
)

// ColumnType tracks how a column should be interpreted downstream.
type ColumnType int

const (
	// TypeAny is the type of columns holding raw, uncoerced cells.
	TypeAny ColumnType = iota

	// TypeText marks a column whose cells have been coerced to strings.
	// A column composed entirely of missing values is still TypeText after
	// conversion so the schema stays predictable downstream.
	TypeText
)

// Frame is a tabular structure with named columns and ordered rows.
// A nil cell is an explicit missing value, never the string "nan".
type Frame struct {
	cols  []string
	types []ColumnType
	rows  [][]any
}

// New creates an empty frame with the given column names.
func New(cols ...string) *Frame {
	f := &Frame{
		cols:  append([]string{}, cols...),
		types: make([]ColumnType, len(cols)),
	}
	return f
}

// FromRecords builds a frame from loosely-typed records. The column set is
// the union of all record keys in sorted order; absent keys become missing
// cells.
func FromRecords(records []map[string]any) *Frame {
	seen := map[string]bool{}
	var cols []string
	for _, rec := range records {
		for key := range rec {
			if !seen[key] {
				seen[key] = true
				cols = append(cols, key)
			}
		}
	}
	sort.Strings(cols)

	f := New(cols...)
	for _, rec := range records {
		row := make([]any, len(cols))
		for i, col := range cols {
			if v, ok := rec[col]; ok {
				row[i] = v
			}
		}
		f.rows = append(f.rows, row)
	}
	return f
}

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	return append([]string{}, f.cols...)
}

// RowCount returns the number of rows.
func (f *Frame) RowCount() int {
	return len(f.rows)
}

// Empty reports whether the frame has no rows.
func (f *Frame) Empty() bool {
	return len(f.rows) == 0
}

// AppendRow adds one row. The cell count must match the column count.
func (f *Frame) AppendRow(cells ...any) error {
	if len(cells) != len(f.cols) {
		return fmt.Errorf("row has %d cells, frame has %d columns", len(cells), len(f.cols))
	}
	f.rows = append(f.rows, append([]any{}, cells...))
	return nil
}

// Cell returns the cell at the given row for the named column.
func (f *Frame) Cell(row int, col string) (any, bool) {
	idx := f.colIndex(col)
	if idx < 0 || row < 0 || row >= len(f.rows) {
		return nil, false
	}
	return f.rows[row][idx], true
}

// Column returns all cells of the named column in row order.
func (f *Frame) Column(name string) ([]any, bool) {
	idx := f.colIndex(name)
	if idx < 0 {
		return nil, false
	}
	out := make([]any, len(f.rows))
	for i, row := range f.rows {
		out[i] = row[idx]
	}
	return out, true
}

// ColumnType returns the tracked type of the named column.
func (f *Frame) ColumnType(name string) (ColumnType, bool) {
	idx := f.colIndex(name)
	if idx < 0 {
		return TypeAny, false
	}
	return f.types[idx], true
}

// AddConstColumn appends a column holding the same value in every row.
// Used to tag merged sub-resources with their provenance (e.g. sheet name).
func (f *Frame) AddConstColumn(name string, value any) {
	f.cols = append(f.cols, name)
	f.types = append(f.types, TypeAny)
	for i := range f.rows {
		f.rows[i] = append(f.rows[i], value)
	}
}

// Concat concatenates frames in argument order. The result's column set is
// the union of all inputs, in first-seen order; cells for columns a frame
// lacks are missing.
func Concat(frames ...*Frame) *Frame {
	seen := map[string]bool{}
	var cols []string
	for _, fr := range frames {
		for _, col := range fr.cols {
			if !seen[col] {
				seen[col] = true
				cols = append(cols, col)
			}
		}
	}

	out := New(cols...)
	for _, fr := range frames {
		for _, row := range fr.rows {
			merged := make([]any, len(cols))
			for i, col := range cols {
				if idx := fr.colIndex(col); idx >= 0 {
					merged[i] = row[idx]
				}
			}
			out.rows = append(out.rows, merged)
		}
	}
	return out
}

func (f *Frame) colIndex(name string) int {
	for i, col := range f.cols {
		if col == name {
			return i
		}
	}
	return -1
}
