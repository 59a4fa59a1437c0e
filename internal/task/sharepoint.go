package task

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/adrian-wojcik/viadot/internal/connector/sharepoint"
	"github.com/adrian-wojcik/viadot/internal/credentials"
	"github.com/adrian-wojcik/viadot/internal/frame"
)

// SharepointOptions configure the sharepoint_to_df task.
type SharepointOptions struct {
	// URL addresses a single spreadsheet file.
	URL string

	// Sheets/SheetIndexes select sheets; empty means every sheet in
	// workbook order.
	Sheets       []string
	SheetIndexes []int

	// IfEmpty selects the empty-result policy (default warn).
	IfEmpty frame.IfEmpty

	// Tests declares validation rules run against the assembled frame.
	Tests *frame.Rules

	// NAValues replaces the default missing-value markers.
	NAValues []string

	// Credential inputs, in order of preference.
	Credentials map[string]any
	ConfigKey   string
	SecretName  string
	Secrets     credentials.SecretStore

	Logger zerolog.Logger
	Retry  RetryPolicy

	// Transport allows injecting a stub transport in tests.
	Transport http.RoundTripper
}

// SharepointToDF loads an Excel file stored on the document platform into
// a frame with all values as text and a sheet_name provenance column.
func SharepointToDF(ctx context.Context, opts SharepointOptions) (*frame.Frame, error) {
	logger := taskLogger(opts.Logger, "sharepoint_to_df")

	connector, err := newSharepoint(opts.Credentials, opts.ConfigKey, opts.SecretName, opts.Secrets, logger, opts.Transport)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("url", opts.URL).Msg("downloading data")
	return run(ctx, opts.Retry, logger, func(ctx context.Context) (*frame.Frame, error) {
		return connector.ToDF(ctx, opts.URL, sharepoint.ToDFOptions{
			Sheets:       opts.Sheets,
			SheetIndexes: opts.SheetIndexes,
			IfEmpty:      opts.IfEmpty,
			Tests:        opts.Tests,
			NAValues:     opts.NAValues,
		})
	})
}

// SharepointDownloadOptions configure the sharepoint_download_file task.
type SharepointDownloadOptions struct {
	// URL addresses the exact file to download.
	URL string

	// ToPath is the local destination path.
	ToPath string

	// Credential inputs, in order of preference.
	Credentials map[string]any
	ConfigKey   string
	SecretName  string
	Secrets     credentials.SecretStore

	Logger zerolog.Logger
	Retry  RetryPolicy

	// Transport allows injecting a stub transport in tests.
	Transport http.RoundTripper
}

// SharepointDownloadFile downloads one file from the document platform to
// a local path.
func SharepointDownloadFile(ctx context.Context, opts SharepointDownloadOptions) error {
	logger := taskLogger(opts.Logger, "sharepoint_download_file")

	connector, err := newSharepoint(opts.Credentials, opts.ConfigKey, opts.SecretName, opts.Secrets, logger, opts.Transport)
	if err != nil {
		return err
	}

	logger.Info().Str("url", opts.URL).Str("to_path", opts.ToPath).Msg("downloading file")
	_, err = run(ctx, opts.Retry, logger, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, connector.DownloadFile(ctx, opts.URL, opts.ToPath)
	})
	if err != nil {
		return err
	}
	logger.Info().Str("url", opts.URL).Msg("successfully downloaded file")
	return nil
}

// newSharepoint resolves credentials and builds the connector. Resolution
// failures are fatal before any network call.
func newSharepoint(explicit map[string]any, configKey, secretName string, store credentials.SecretStore, logger zerolog.Logger, transport http.RoundTripper) (*sharepoint.Sharepoint, error) {
	creds, err := credentials.Resolve(explicit, configKey, secretName, store)
	if err != nil {
		return nil, err
	}
	record, err := sharepoint.CredentialsFromMap(creds)
	if err != nil {
		return nil, err
	}
	return sharepoint.New(&sharepoint.Config{
		Credentials: record,
		Logger:      logger,
		Transport:   transport,
	})
}
