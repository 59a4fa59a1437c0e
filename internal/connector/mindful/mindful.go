// Package mindful implements the Mindful (Survey Dynamix) customer-feedback
// connector: an authenticated fetch against one regional API deployment
// followed by conversion of the raw response into a frame.
package mindful

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/adrian-wojcik/viadot/internal/connector/http"
	"github.com/adrian-wojcik/viadot/internal/frame"
)

// Mindful is the feedback-platform connector. Each APIConnection call is
// independent; only the raw response of the most recent fetch is kept for
// ToDF.
type Mindful struct {
	client *http.Client
	config *Config

	endpoint string
	response []byte
	fetched  bool
}

// New creates a Mindful connector. Credentials are validated eagerly; an
// invalid record fails here, before any network call.
func New(cfg *Config) (*Mindful, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	httpConfig := &http.ClientConfig{
		BaseURL:   cfg.baseURL(),
		Auth:      http.BearerToken{Token: cfg.Credentials.AuthToken},
		Transport: cfg.Transport,
		Headers: map[string]string{
			"Accept": "application/json",
		},
	}

	return &Mindful{
		client: http.NewClient(httpConfig),
		config: cfg,
	}, nil
}

// APIConnection issues one request against the named endpoint, bounded by
// limit and, for time-bounded endpoints, the [Start, End) date interval.
// A nil interval defaults to the trailing 24 hours from the moment of the
// call. An empty endpoint falls back to DefaultEndpoint with a warning.
func (m *Mindful) APIConnection(ctx context.Context, endpoint string, interval *DateInterval, limit int) error {
	if endpoint == "" {
		m.config.Logger.Warn().Msgf("the API endpoint parameter was not defined, defaulting to %q", DefaultEndpoint)
		endpoint = DefaultEndpoint
	}
	if !knownEndpoints[endpoint] {
		return fmt.Errorf("unknown endpoint %q: must be one of interactions, responses, surveys", endpoint)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := url.Values{}
	query.Set("_limit", strconv.Itoa(limit))
	if timeBoundedEndpoints[endpoint] {
		if interval == nil {
			interval = TrailingDay(time.Now().UTC())
		}
		if !interval.End.After(interval.Start) {
			return fmt.Errorf("invalid date interval: end %s is not after start %s",
				interval.End.Format(time.RFC3339), interval.Start.Format(time.RFC3339))
		}
		query.Set("start_date", interval.Start.UTC().Format(time.RFC3339))
		query.Set("end_date", interval.End.UTC().Format(time.RFC3339))
	}

	resp, err := m.client.Get(ctx, endpoint, query)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", endpoint, err)
	}

	m.endpoint = endpoint
	m.response = resp.Body
	m.fetched = true
	m.config.Logger.Info().
		Str("endpoint", endpoint).
		Int("bytes", len(resp.Body)).
		Msg("fetched response")
	return nil
}

// ToDF converts the most recent fetch's raw response into a frame. It fails
// if called before a fetch.
func (m *Mindful) ToDF() (*frame.Frame, error) {
	if !m.fetched {
		return nil, fmt.Errorf("no response to convert: call APIConnection first")
	}

	if len(m.response) == 0 {
		return frame.New(), nil
	}

	var records []map[string]any
	if err := json.Unmarshal(m.response, &records); err != nil {
		return nil, fmt.Errorf("parse %s response: %w", m.endpoint, err)
	}

	f := frame.FromRecords(records)
	m.config.Logger.Info().
		Str("endpoint", m.endpoint).
		Int("rows", f.RowCount()).
		Msg("converted response to frame")
	return f, nil
}
