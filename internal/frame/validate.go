package frame

import (
	"fmt"
	"regexp"
	"sort"
)

// Rules declares validation checks to run against an assembled frame.
// Zero-valued fields are skipped.
type Rules struct {
	// RowCountMin/RowCountMax bound the total row count (inclusive).
	RowCountMin *int
	RowCountMax *int

	// ColumnsToMatch is the exact expected column set, order-insensitive.
	ColumnsToMatch []string

	// UniqueColumns must not contain duplicate non-missing values.
	UniqueColumns []string

	// MatchRegex maps column names to patterns every non-missing value
	// must match in full.
	MatchRegex map[string]string

	// ColumnSize maps column names to the exact string length every
	// non-missing value must have.
	ColumnSize map[string]int
}

// Validate runs the declared rules and returns a ValidationError listing
// every failure, or nil when all rules pass.
func (f *Frame) Validate(rules *Rules) error {
	if rules == nil {
		return nil
	}

	var failures []string

	if rules.RowCountMin != nil && f.RowCount() < *rules.RowCountMin {
		failures = append(failures, fmt.Sprintf("row count %d below minimum %d", f.RowCount(), *rules.RowCountMin))
	}
	if rules.RowCountMax != nil && f.RowCount() > *rules.RowCountMax {
		failures = append(failures, fmt.Sprintf("row count %d above maximum %d", f.RowCount(), *rules.RowCountMax))
	}

	if len(rules.ColumnsToMatch) > 0 {
		want := append([]string{}, rules.ColumnsToMatch...)
		got := f.Columns()
		sort.Strings(want)
		sort.Strings(got)
		if !equalStrings(want, got) {
			failures = append(failures, fmt.Sprintf("columns %v do not match expected %v", got, want))
		}
	}

	for _, col := range rules.UniqueColumns {
		cells, ok := f.Column(col)
		if !ok {
			failures = append(failures, fmt.Sprintf("unique check: column %q not found", col))
			continue
		}
		seen := map[string]bool{}
		for _, cell := range cells {
			if cell == nil {
				continue
			}
			key := renderCell(cell)
			if seen[key] {
				failures = append(failures, fmt.Sprintf("column %q contains duplicate value %q", col, key))
				break
			}
			seen[key] = true
		}
	}

	for col, pattern := range rules.MatchRegex {
		re, err := regexp.Compile("^(?:" + pattern + ")$")
		if err != nil {
			failures = append(failures, fmt.Sprintf("invalid pattern for column %q: %v", col, err))
			continue
		}
		cells, ok := f.Column(col)
		if !ok {
			failures = append(failures, fmt.Sprintf("regex check: column %q not found", col))
			continue
		}
		for i, cell := range cells {
			if cell == nil {
				continue
			}
			if !re.MatchString(renderCell(cell)) {
				failures = append(failures, fmt.Sprintf("column %q row %d does not match %q", col, i, pattern))
				break
			}
		}
	}

	for col, size := range rules.ColumnSize {
		cells, ok := f.Column(col)
		if !ok {
			failures = append(failures, fmt.Sprintf("size check: column %q not found", col))
			continue
		}
		for i, cell := range cells {
			if cell == nil {
				continue
			}
			if len(renderCell(cell)) != size {
				failures = append(failures, fmt.Sprintf("column %q row %d has length %d, expected %d", col, i, len(renderCell(cell)), size))
				break
			}
		}
	}

	if len(failures) > 0 {
		return &ValidationError{Failures: failures}
	}
	return nil
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
