package sharepoint

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/adrian-wojcik/viadot/internal/credentials"
)

// Credentials holds the SharePoint credential record.
type Credentials struct {
	Site     string // path to the SharePoint site, e.g. {tenant}.sharepoint.com
	Username string
	Password string
}

// Validate enforces required fields before any network call.
func (c *Credentials) Validate() error {
	if c == nil || c.Site == "" || c.Username == "" || c.Password == "" {
		return fmt.Errorf("'site', 'username', and 'password' credentials are required: %w", credentials.ErrMissingCredentials)
	}
	return nil
}

// CredentialsFromMap builds a validated credential record from a resolved
// credential mapping.
func CredentialsFromMap(creds map[string]any) (*Credentials, error) {
	c := &Credentials{
		Site:     credentials.String(creds, "site"),
		Username: credentials.String(creds, "username"),
		Password: credentials.String(creds, "password"),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Config holds SharePoint connection settings.
type Config struct {
	Credentials *Credentials
	Logger      zerolog.Logger

	// Transport allows injecting a stub transport in tests.
	Transport http.RoundTripper
}

// Validate checks configuration completeness.
func (c *Config) Validate() error {
	return c.Credentials.Validate()
}

// CredentialError reports an authentication failure against a site. The
// message names the target site and never includes the password.
type CredentialError struct {
	Site string
	Err  error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("could not authenticate to %s with provided credentials", e.Site)
}

func (e *CredentialError) Unwrap() error { return e.Err }
