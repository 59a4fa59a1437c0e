package task

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/adrian-wojcik/viadot/internal/connector/mindful"
	"github.com/adrian-wojcik/viadot/internal/credentials"
	"github.com/adrian-wojcik/viadot/internal/frame"
)

// MindfulOptions configure the mindful_to_df task.
type MindfulOptions struct {
	// Credential inputs, in order of preference.
	Credentials map[string]any
	ConfigKey   string // default "mindful"
	SecretName  string
	Secrets     credentials.SecretStore

	// Region selects the Survey Dynamix deployment (default eu1).
	Region string

	// Endpoint names the API resource; empty defaults to surveys with a
	// warning.
	Endpoint string

	// DateInterval bounds time-bounded endpoints; nil means the trailing
	// 24 hours from the moment of the call.
	DateInterval *mindful.DateInterval

	// Limit is the number of matching records to return (default 1000).
	Limit int

	Logger zerolog.Logger
	Retry  RetryPolicy

	// Transport allows injecting a stub transport in tests.
	Transport http.RoundTripper
}

// MindfulToDF downloads data from the Mindful API and returns it as a
// frame. Credential resolution failures are fatal before any network call;
// fetch failures are retried under the policy and then surfaced unchanged.
func MindfulToDF(ctx context.Context, opts MindfulOptions) (*frame.Frame, error) {
	logger := taskLogger(opts.Logger, "mindful_to_df")

	configKey := opts.ConfigKey
	if configKey == "" {
		configKey = "mindful"
	}

	creds, err := credentials.Resolve(opts.Credentials, configKey, opts.SecretName, opts.Secrets)
	if err != nil {
		return nil, err
	}
	record, err := mindful.CredentialsFromMap(creds)
	if err != nil {
		return nil, err
	}

	connector, err := mindful.New(&mindful.Config{
		Credentials: record,
		Region:      opts.Region,
		Logger:      logger,
		Transport:   opts.Transport,
	})
	if err != nil {
		return nil, err
	}

	return run(ctx, opts.Retry, logger, func(ctx context.Context) (*frame.Frame, error) {
		if err := connector.APIConnection(ctx, opts.Endpoint, opts.DateInterval, opts.Limit); err != nil {
			return nil, err
		}
		return connector.ToDF()
	})
}

// MindfulToFile saves a frame produced by MindfulToDF to a local path and
// returns the resolved absolute path. An empty path defaults to a
// timestamped CSV in the working directory. The extension selects the
// format; anything outside csv/parquet is rejected before any write. The
// separator applies to CSV output and defaults to tab.
func MindfulToFile(df *frame.Frame, path string, sep rune, logger zerolog.Logger) (string, error) {
	log := taskLogger(logger, "mindful_to_file")

	if path == "" {
		path = fmt.Sprintf("mindful_response_%s.csv", time.Now().Format("20060102150405"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve path %s: %w", path, err)
	}

	if _, err := frame.FormatForPath(abs); err != nil {
		return "", err
	}

	if dir := filepath.Dir(abs); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}

	if sep == 0 {
		sep = '\t'
	}
	if err := df.WriteFile(abs, sep); err != nil {
		return "", err
	}

	log.Info().Str("path", abs).Int("rows", df.RowCount()).Msg("the file was saved correctly")
	return abs, nil
}
