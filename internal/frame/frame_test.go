package frame

import (
	"testing"
)

// =============================================================================
// FRAME ASSEMBLY TESTS
// =============================================================================

func TestFromRecords_UnionOfKeys(t *testing.T) {
	f := FromRecords([]map[string]any{
		{"id": 1, "name": "a"},
		{"id": 2, "score": 9.5},
	})

	cols := f.Columns()
	want := []string{"id", "name", "score"}
	if len(cols) != len(want) {
		t.Fatalf("got columns %v, want %v", cols, want)
	}
	for i := range want {
		if cols[i] != want[i] {
			t.Fatalf("got columns %v, want %v", cols, want)
		}
	}

	if f.RowCount() != 2 {
		t.Fatalf("got %d rows, want 2", f.RowCount())
	}
	if cell, _ := f.Cell(0, "score"); cell != nil {
		t.Errorf("absent key should be missing, got %v", cell)
	}
	if cell, _ := f.Cell(1, "name"); cell != nil {
		t.Errorf("absent key should be missing, got %v", cell)
	}
}

func TestConcat_AlignsColumns(t *testing.T) {
	a := New("x", "y")
	_ = a.AppendRow("1", "2")
	b := New("y", "z")
	_ = b.AppendRow("3", "4")

	out := Concat(a, b)
	if out.RowCount() != 2 {
		t.Fatalf("got %d rows, want 2", out.RowCount())
	}
	cols := out.Columns()
	if len(cols) != 3 || cols[0] != "x" || cols[1] != "y" || cols[2] != "z" {
		t.Fatalf("got columns %v, want [x y z]", cols)
	}
	if cell, _ := out.Cell(1, "x"); cell != nil {
		t.Errorf("second block has no x column, got %v", cell)
	}
	if cell, _ := out.Cell(1, "z"); cell != "4" {
		t.Errorf("got %v, want 4", cell)
	}
}

func TestAddConstColumn(t *testing.T) {
	f := New("a")
	_ = f.AppendRow("1")
	_ = f.AppendRow("2")
	f.AddConstColumn("sheet_name", "Summary")

	cells, ok := f.Column("sheet_name")
	if !ok {
		t.Fatal("sheet_name column missing")
	}
	for i, cell := range cells {
		if cell != "Summary" {
			t.Errorf("row %d: got %v, want Summary", i, cell)
		}
	}
}

// =============================================================================
// NORMALIZATION TESTS
// =============================================================================

func TestReplaceNA_DefaultMarkers(t *testing.T) {
	f := New("v")
	_ = f.AppendRow("N/A")
	_ = f.AppendRow("#N/A")
	_ = f.AppendRow("keep")
	f.ReplaceNA(nil)

	cells, _ := f.Column("v")
	if cells[0] != nil || cells[1] != nil {
		t.Errorf("default markers not replaced: %v", cells)
	}
	if cells[2] != "keep" {
		t.Errorf("got %v, want keep", cells[2])
	}
}

func TestReplaceNA_CustomMarkersReplaceDefaults(t *testing.T) {
	f := New("v")
	_ = f.AppendRow("N/A")
	_ = f.AppendRow("missing")
	f.ReplaceNA([]string{"missing"})

	cells, _ := f.Column("v")
	if cells[0] != "N/A" {
		t.Errorf("custom markers must replace defaults, N/A became %v", cells[0])
	}
	if cells[1] != nil {
		t.Errorf("custom marker not applied: %v", cells[1])
	}
}

func TestCleanup_TrimsAndCollapses(t *testing.T) {
	f := New("v")
	_ = f.AppendRow("  padded  ")
	_ = f.AppendRow("   ")
	f.Cleanup()

	cells, _ := f.Column("v")
	if cells[0] != "padded" {
		t.Errorf("got %v, want padded", cells[0])
	}
	if cells[1] != nil {
		t.Errorf("whitespace-only cell should be missing, got %v", cells[1])
	}
}

func TestConvertAllToString(t *testing.T) {
	f := New("n", "b", "empty")
	_ = f.AppendRow(float64(42), true, nil)
	_ = f.AppendRow(3.14, false, nil)
	f.ConvertAllToString()

	if cell, _ := f.Cell(0, "n"); cell != "42" {
		t.Errorf("integral float should render without decimal, got %v", cell)
	}
	if cell, _ := f.Cell(1, "n"); cell != "3.14" {
		t.Errorf("got %v, want 3.14", cell)
	}
	if cell, _ := f.Cell(0, "b"); cell != "true" {
		t.Errorf("got %v, want true", cell)
	}

	// The all-missing column keeps the absent marker and is still text.
	cells, _ := f.Column("empty")
	for i, cell := range cells {
		if cell != nil {
			t.Errorf("row %d: missing cell became %v", i, cell)
		}
	}
	if typ, _ := f.ColumnType("empty"); typ != TypeText {
		t.Errorf("all-missing column should be text-typed, got %v", typ)
	}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func intPtr(v int) *int { return &v }

func TestValidate_RowCountBounds(t *testing.T) {
	f := New("a")
	_ = f.AppendRow("1")

	if err := f.Validate(&Rules{RowCountMin: intPtr(2)}); err == nil {
		t.Error("expected row-count failure")
	}
	if err := f.Validate(&Rules{RowCountMin: intPtr(1), RowCountMax: intPtr(1)}); err != nil {
		t.Errorf("unexpected failure: %v", err)
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	f := New("id")
	_ = f.AppendRow("x")
	_ = f.AppendRow("x")

	err := f.Validate(&Rules{
		UniqueColumns: []string{"id"},
		MatchRegex:    map[string]string{"id": `\d+`},
	})
	if err == nil {
		t.Fatal("expected validation error")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(verr.Failures) != 2 {
		t.Errorf("got %d failures, want 2: %v", len(verr.Failures), verr.Failures)
	}
}

func TestValidate_ColumnsToMatch(t *testing.T) {
	f := New("b", "a")
	if err := f.Validate(&Rules{ColumnsToMatch: []string{"a", "b"}}); err != nil {
		t.Errorf("order-insensitive match failed: %v", err)
	}
	if err := f.Validate(&Rules{ColumnsToMatch: []string{"a"}}); err == nil {
		t.Error("expected column-set mismatch")
	}
}

func TestValidate_NilRules(t *testing.T) {
	f := New("a")
	if err := f.Validate(nil); err != nil {
		t.Errorf("nil rules should pass: %v", err)
	}
}
