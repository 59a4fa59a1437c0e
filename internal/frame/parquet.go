package frame

import (
	"encoding/json"
	"fmt"

	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"
)

// WriteParquet writes the frame as a snappy-compressed parquet file with an
// all-string schema. Missing cells become parquet nulls.
func (f *Frame) WriteParquet(path string) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}

	pw, err := writer.NewJSONWriter(f.parquetSchema(), fw, 4)
	if err != nil {
		_ = fw.Close()
		return fmt.Errorf("create parquet writer: %w", err)
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, row := range f.rows {
		rec := make(map[string]any, len(f.cols))
		for i, col := range f.cols {
			if row[i] == nil {
				rec[col] = nil
			} else {
				rec[col] = renderCell(row[i])
			}
		}
		data, err := json.Marshal(rec)
		if err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return fmt.Errorf("encode row: %w", err)
		}
		if err := pw.Write(string(data)); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return fmt.Errorf("finalize parquet: %w", err)
	}
	return fw.Close()
}

// parquetSchema builds the JSON schema definition for the writer. Every
// column is an optional UTF8 byte array.
func (f *Frame) parquetSchema() string {
	fields := make([]map[string]string, 0, len(f.cols))
	for _, col := range f.cols {
		fields = append(fields, map[string]string{
			"Tag": fmt.Sprintf("name=%s, type=BYTE_ARRAY, convertedtype=UTF8, repetitiontype=OPTIONAL", col),
		})
	}
	out := map[string]any{
		"Tag":    "name=parquet_go_root, repetitiontype=REQUIRED",
		"Fields": fields,
	}
	b, _ := json.Marshal(out)
	return string(b)
}

// ReadParquet loads a parquet file written by WriteParquet back into a
// text-typed frame. Nulls come back as missing cells.
func ReadParquet(path string) (*Frame, error) {
	fr, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, fmt.Errorf("open parquet file: %w", err)
	}
	defer fr.Close()

	pr, err := reader.NewParquetReader(fr, nil, 4)
	if err != nil {
		return nil, fmt.Errorf("create parquet reader: %w", err)
	}
	defer pr.ReadStop()

	num := pr.GetNumRows()
	infos := pr.SchemaHandler.Infos
	if len(infos) < 1 {
		return New(), nil
	}

	// Infos[0] is the root node; leaves follow in schema order.
	cols := make([]string, 0, len(infos)-1)
	for _, info := range infos[1:] {
		cols = append(cols, info.ExName)
	}

	columns := make([][]any, len(cols))
	for i := range cols {
		vals, _, dls, err := pr.ReadColumnByIndex(int64(i), num)
		if err != nil {
			return nil, fmt.Errorf("read column %q: %w", cols[i], err)
		}
		cells := make([]any, len(dls))
		for j := range dls {
			if dls[j] == 0 || j >= len(vals) || vals[j] == nil {
				continue
			}
			cells[j] = renderCell(vals[j])
		}
		columns[i] = cells
	}

	f := New(cols...)
	for r := int64(0); r < num; r++ {
		row := make([]any, len(cols))
		for c := range cols {
			if int(r) < len(columns[c]) {
				row[c] = columns[c][r]
			}
		}
		f.rows = append(f.rows, row)
	}
	for i := range f.types {
		f.types[i] = TypeText
	}
	return f, nil
}
