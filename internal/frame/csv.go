package frame

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV encodes the frame as delimited text with the given separator.
// Missing cells are written as empty fields.
func (f *Frame) WriteCSV(w io.Writer, sep rune) error {
	cw := csv.NewWriter(w)
	if sep != 0 {
		cw.Comma = sep
	}

	if err := cw.Write(f.cols); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	record := make([]string, len(f.cols))
	for _, row := range f.rows {
		for i, cell := range row {
			if cell == nil {
				record[i] = ""
			} else {
				record[i] = renderCell(cell)
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV decodes delimited text into a text-typed frame. Empty fields
// become missing cells.
func ReadCSV(r io.Reader, sep rune) (*Frame, error) {
	cr := csv.NewReader(r)
	if sep != 0 {
		cr.Comma = sep
	}

	header, err := cr.Read()
	if err == io.EOF {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	f := New(header...)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		row := make([]any, len(header))
		for i, field := range record {
			if field != "" {
				row[i] = field
			}
		}
		f.rows = append(f.rows, row)
	}
	for i := range f.types {
		f.types[i] = TypeText
	}
	return f, nil
}
