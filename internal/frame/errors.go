package frame

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResult is returned when an assembled frame has no rows and the
// caller chose the failing empty-result policy.
var ErrEmptyResult = errors.New("query produced an empty result")

// UnsupportedFormatError reports a file extension outside the closed set of
// supported formats. It is raised before any write occurs.
type UnsupportedFormatError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file extension %q in %q: must be either 'csv' or 'parquet'", e.Ext, e.Path)
}

// ValidationError collects every validation rule that failed against a frame.
type ValidationError struct {
	Failures []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("frame validation failed: %s", strings.Join(e.Failures, "; "))
}
