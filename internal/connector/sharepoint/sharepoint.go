// Package sharepoint implements the document-platform connector: it
// downloads Excel workbooks over an authenticated session and materializes
// selected sheets as a frame with provenance tagging.
package sharepoint

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/adrian-wojcik/viadot/internal/frame"
)

// Sharepoint is the document-platform connector. Each operation opens its
// own session and closes it before returning.
type Sharepoint struct {
	config *Config
}

// New creates a SharePoint connector. Credentials are validated eagerly.
func New(cfg *Config) (*Sharepoint, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Sharepoint{config: cfg}, nil
}

// GetConnection authenticates to the site and returns an open session.
// Callers own closing it.
func (s *Sharepoint) GetConnection(ctx context.Context) (Session, error) {
	return newSession(ctx, s.config)
}

// DownloadFile downloads one exact file reference to a local path. The
// session is always closed afterward, including on error.
func (s *Sharepoint) DownloadFile(ctx context.Context, url, toPath string) error {
	conn, err := s.GetConnection(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.GetFile(ctx, url, toPath); err != nil {
		return fmt.Errorf("download %s: %w", url, err)
	}
	return nil
}

// ToDFOptions control sheet selection and normalization in ToDF.
type ToDFOptions struct {
	// Sheets names the sheets to parse. Empty means every sheet in the
	// workbook, in workbook order.
	Sheets []string

	// SheetIndexes selects sheets by zero-based workbook position. Used
	// only when Sheets is empty.
	SheetIndexes []int

	// IfEmpty selects the empty-result policy (default warn).
	IfEmpty frame.IfEmpty

	// Tests declares validation rules to run against the assembled frame.
	Tests *frame.Rules

	// NAValues replaces (not extends) the default missing-value markers.
	NAValues []string

	// NRows is not supported; a non-zero value is rejected before any
	// download.
	NRows int
}

// DownloadExcel fetches the workbook behind a file-classified URL whose
// extension is the spreadsheet format, and returns a parseable multi-sheet
// handle. Any other URL shape or extension is rejected before download.
func (s *Sharepoint) DownloadExcel(ctx context.Context, url string) (*excelize.File, error) {
	value, kind, err := GetLastSegmentFromURL(url)
	if err != nil {
		return nil, err
	}
	if kind != SegmentFile {
		return nil, fmt.Errorf("URL %q points at a directory (%s), not a file", url, value)
	}
	if value != ".xlsx" {
		return nil, fmt.Errorf("only Excel files with 'XLSX' extension can be loaded, got %q", value)
	}

	conn, err := s.GetConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	s.config.Logger.Info().Str("url", url).Msg("downloading workbook")
	body, err := conn.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", url, err)
	}

	workbook, err := excelize.OpenReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("open workbook from %s: %w", url, err)
	}
	return workbook, nil
}

// ToDF fetches the workbook and assembles the selected sheets into one
// frame. Each block is tagged with its sheet name; blocks are concatenated
// in workbook order when no selector is given. After assembly the empty
// policy, declared validation rules, cleanup, and all-to-string conversion
// are applied in that order.
func (s *Sharepoint) ToDF(ctx context.Context, url string, opts ToDFOptions) (*frame.Frame, error) {
	if opts.NRows != 0 {
		return nil, fmt.Errorf("parameter 'nrows' is not supported")
	}
	if err := opts.IfEmpty.Validate(); err != nil {
		return nil, err
	}

	workbook, err := s.DownloadExcel(ctx, url)
	if err != nil {
		return nil, err
	}
	defer workbook.Close()

	sheets, err := resolveSheets(workbook, opts)
	if err != nil {
		return nil, err
	}

	blocks := make([]*frame.Frame, 0, len(sheets))
	for _, sheet := range sheets {
		block, err := parseSheet(workbook, sheet, opts.NAValues)
		if err != nil {
			return nil, err
		}
		block.AddConstColumn("sheet_name", sheet)
		blocks = append(blocks, block)
	}
	df := frame.Concat(blocks...)

	if df.Empty() {
		switch opts.IfEmpty {
		case frame.IfEmptyFail:
			return nil, fmt.Errorf("workbook %s: %w", url, frame.ErrEmptyResult)
		case frame.IfEmptySkip:
			return frame.New(), nil
		default:
			s.config.Logger.Warn().Str("url", url).Msg("workbook produced an empty frame")
		}
	} else {
		s.config.Logger.Info().Int("rows", df.RowCount()).Msg("successfully downloaded data")
	}

	df.Cleanup()

	if opts.Tests != nil {
		if err := df.Validate(opts.Tests); err != nil {
			return nil, err
		}
	}

	df.ConvertAllToString()
	return df, nil
}

// resolveSheets maps the options to concrete sheet names, defaulting to
// every sheet in workbook order.
func resolveSheets(workbook *excelize.File, opts ToDFOptions) ([]string, error) {
	all := workbook.GetSheetList()

	if len(opts.Sheets) > 0 {
		known := make(map[string]bool, len(all))
		for _, name := range all {
			known[name] = true
		}
		for _, name := range opts.Sheets {
			if !known[name] {
				return nil, fmt.Errorf("sheet %q not found in workbook (has %v)", name, all)
			}
		}
		return opts.Sheets, nil
	}

	if len(opts.SheetIndexes) > 0 {
		names := make([]string, 0, len(opts.SheetIndexes))
		for _, idx := range opts.SheetIndexes {
			if idx < 0 || idx >= len(all) {
				return nil, fmt.Errorf("sheet index %d out of range (workbook has %d sheets)", idx, len(all))
			}
			names = append(names, all[idx])
		}
		return names, nil
	}

	return all, nil
}

// parseSheet reads one sheet into a frame. The first row is the header;
// short rows are padded with missing cells and NA markers are applied.
func parseSheet(workbook *excelize.File, sheet string, naValues []string) (*frame.Frame, error) {
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return frame.New(), nil
	}

	header := rows[0]
	f := frame.New(header...)
	for _, row := range rows[1:] {
		cells := make([]any, len(header))
		for i := range header {
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		if err := f.AppendRow(cells...); err != nil {
			return nil, err
		}
	}

	f.ReplaceNA(naValues)
	return f, nil
}
