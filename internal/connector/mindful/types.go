package mindful

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/adrian-wojcik/viadot/internal/credentials"
)

// DefaultEndpoint is used when the caller does not name an API endpoint.
const DefaultEndpoint = "surveys"

// DefaultLimit bounds the number of matching records per request.
const DefaultLimit = 1000

// Regions is the fixed set of Survey Dynamix regional deployments.
var Regions = []string{"us1", "us2", "us3", "ca1", "eu1", "au1"}

// knownEndpoints are the API resources the connector can query. The
// time-bounded ones accept a date interval.
var knownEndpoints = map[string]bool{
	"interactions": true,
	"responses":    true,
	"surveys":      true,
}

// timeBoundedEndpoints take start/end date parameters.
var timeBoundedEndpoints = map[string]bool{
	"interactions": true,
	"responses":    true,
}

// Credentials holds the Mindful API credential record.
type Credentials struct {
	CustomerUUID string
	AuthToken    string
}

// Validate enforces required fields before any network call.
func (c *Credentials) Validate() error {
	if c == nil || c.CustomerUUID == "" || c.AuthToken == "" {
		return fmt.Errorf("'customer_uuid' and 'auth_token' credentials are required: %w", credentials.ErrMissingCredentials)
	}
	return nil
}

// CredentialsFromMap builds a validated credential record from a resolved
// credential mapping.
func CredentialsFromMap(creds map[string]any) (*Credentials, error) {
	c := &Credentials{
		CustomerUUID: credentials.String(creds, "customer_uuid"),
		AuthToken:    credentials.String(creds, "auth_token"),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// DateInterval is a half-open [Start, End) query window.
type DateInterval struct {
	Start time.Time
	End   time.Time
}

// TrailingDay returns the interval covering the 24 hours up to now.
func TrailingDay(now time.Time) *DateInterval {
	return &DateInterval{Start: now.Add(-24 * time.Hour), End: now}
}

// Config holds Mindful connection settings.
type Config struct {
	Credentials *Credentials
	Region      string // one of Regions (default eu1)
	Logger      zerolog.Logger

	// Transport allows injecting a stub transport in tests.
	Transport http.RoundTripper
}

// Validate checks configuration completeness and applies defaults.
func (c *Config) Validate() error {
	if err := c.Credentials.Validate(); err != nil {
		return err
	}
	if c.Region == "" {
		c.Region = "eu1"
	}
	valid := false
	for _, r := range Regions {
		if c.Region == r {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown region %q: must be one of %v", c.Region, Regions)
	}
	return nil
}

// baseURL maps the region selector to its API deployment. The us1 region
// lives on the apex host.
func (c *Config) baseURL() string {
	if c.Region == "us1" {
		return "https://surveydynamix.com/api"
	}
	return fmt.Sprintf("https://%s.surveydynamix.com/api", c.Region)
}
