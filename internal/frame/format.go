package frame

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format is the closed set of supported file formats.
type Format int

const (
	// FormatCSV is delimited text with a configurable separator.
	FormatCSV Format = iota + 1

	// FormatParquet is the columnar binary format.
	FormatParquet
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatParquet:
		return "parquet"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForPath resolves the output format from a path's extension.
// Any extension outside the closed set is rejected before any write.
func FormatForPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return FormatCSV, nil
	case ".parquet":
		return FormatParquet, nil
	default:
		return 0, &UnsupportedFormatError{Path: path, Ext: ext}
	}
}

// WriteFile persists the frame to path, dispatching on the resolved format.
// The separator applies only to CSV output.
func (f *Frame) WriteFile(path string, sep rune) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	switch format {
	case FormatCSV:
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create %s: %w", path, err)
		}
		defer file.Close()
		if err := f.WriteCSV(file, sep); err != nil {
			return fmt.Errorf("write csv %s: %w", path, err)
		}
		return nil
	case FormatParquet:
		if err := f.WriteParquet(path); err != nil {
			return fmt.Errorf("write parquet %s: %w", path, err)
		}
		return nil
	default:
		return &UnsupportedFormatError{Path: path, Ext: filepath.Ext(path)}
	}
}

// ReadFile loads a frame from path, dispatching on the resolved format.
func ReadFile(path string, sep rune) (*Frame, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer file.Close()
		return ReadCSV(file, sep)
	case FormatParquet:
		return ReadParquet(path)
	default:
		return nil, &UnsupportedFormatError{Path: path, Ext: filepath.Ext(path)}
	}
}
