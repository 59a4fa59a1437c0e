package frame

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func sampleFrame(t *testing.T) *Frame {
	t.Helper()
	f := New("id", "name", "note")
	if err := f.AppendRow("1", "alpha", nil); err != nil {
		t.Fatal(err)
	}
	if err := f.AppendRow("2", "beta", "ok"); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFormatForPath(t *testing.T) {
	if format, err := FormatForPath("out/data.CSV"); err != nil || format != FormatCSV {
		t.Errorf("got (%v, %v), want (FormatCSV, nil)", format, err)
	}
	if format, err := FormatForPath("data.parquet"); err != nil || format != FormatParquet {
		t.Errorf("got (%v, %v), want (FormatParquet, nil)", format, err)
	}

	_, err := FormatForPath("data.txt")
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected *UnsupportedFormatError, got %v", err)
	}
	if ufe.Ext != ".txt" {
		t.Errorf("got ext %q, want .txt", ufe.Ext)
	}
}

func TestWriteFile_RejectsBeforeWriting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.txt")
	err := sampleFrame(t).WriteFile(path, ',')
	var ufe *UnsupportedFormatError
	if !errors.As(err, &ufe) {
		t.Fatalf("expected *UnsupportedFormatError, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("rejected path must not be created")
	}
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := sampleFrame(t).WriteCSV(&buf, '\t'); err != nil {
		t.Fatal(err)
	}

	got, err := ReadCSV(bytes.NewReader(buf.Bytes()), '\t')
	if err != nil {
		t.Fatal(err)
	}
	if got.RowCount() != 2 {
		t.Fatalf("got %d rows, want 2", got.RowCount())
	}
	cols := got.Columns()
	if len(cols) != 3 || cols[0] != "id" || cols[1] != "name" || cols[2] != "note" {
		t.Fatalf("got columns %v", cols)
	}
	if cell, _ := got.Cell(1, "note"); cell != "ok" {
		t.Errorf("got %v, want ok", cell)
	}
}

func TestParquetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.parquet")
	if err := sampleFrame(t).WriteFile(path, ','); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path, ',')
	if err != nil {
		t.Fatal(err)
	}
	if got.RowCount() != 2 {
		t.Fatalf("got %d rows, want 2", got.RowCount())
	}
	cols := got.Columns()
	if len(cols) != 3 || cols[0] != "id" || cols[1] != "name" || cols[2] != "note" {
		t.Fatalf("got columns %v", cols)
	}
	if cell, _ := got.Cell(0, "note"); cell != nil {
		t.Errorf("missing cell should survive the round trip, got %v", cell)
	}
	if cell, _ := got.Cell(1, "name"); cell != "beta" {
		t.Errorf("got %v, want beta", cell)
	}
}
