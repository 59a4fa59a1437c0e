package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// Cleanup trims surrounding whitespace from string cells and collapses
// cells that are empty after trimming into missing values.
func (f *Frame) Cleanup() {
	for _, row := range f.rows {
		for i, cell := range row {
			s, ok := cell.(string)
			if !ok {
				continue
			}
			trimmed := strings.TrimSpace(s)
			if trimmed == "" {
				row[i] = nil
			} else {
				row[i] = trimmed
			}
		}
	}
}

// ConvertAllToString coerces every non-missing cell to its string rendering
// and marks all columns as text. Missing cells stay missing rather than
// becoming the literal word for not-a-number, and a column composed entirely
// of missing values is typed as text like any other.
func (f *Frame) ConvertAllToString() {
	for _, row := range f.rows {
		for i, cell := range row {
			if cell == nil {
				continue
			}
			row[i] = renderCell(cell)
		}
	}
	for i := range f.types {
		f.types[i] = TypeText
	}
}

// renderCell stringifies one cell. Floats that carry integral values render
// without a trailing ".0" so numeric identifiers survive coercion intact.
func renderCell(cell any) string {
	switch v := cell.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return renderCell(float64(v))
	default:
		return fmt.Sprint(v)
	}
}
