package sharepoint

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrian-wojcik/viadot/internal/connector/http"
)

// Session is one authenticated connection to the document platform. A
// session is opened per call and must be closed afterward, including on
// error paths.
type Session interface {
	// Get fetches the raw bytes behind a URL.
	Get(ctx context.Context, url string) ([]byte, error)

	// GetFile downloads one exact file reference to a local path.
	GetFile(ctx context.Context, url, toPath string) error

	// Close releases the session.
	Close() error
}

// httpSession implements Session over the shared HTTP client with basic
// authentication. The platform's SAML token dance is owned by the deployed
// gateway, not this layer.
type httpSession struct {
	client *http.Client
	site   string
	closed bool
}

// newSession opens and verifies a session against the configured site. An
// authentication rejection surfaces as a CredentialError naming the site.
func newSession(ctx context.Context, cfg *Config) (Session, error) {
	site := cfg.Credentials.Site
	base := site
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}

	client := http.NewClient(&http.ClientConfig{
		BaseURL: base,
		Auth: http.BasicAuth{
			Username: cfg.Credentials.Username,
			Password: cfg.Credentials.Password,
		},
		Transport: cfg.Transport,
		Headers: map[string]string{
			"Accept": "application/json;odata=verbose",
		},
	})

	// Probe request verifies the credentials up front.
	if _, err := client.Get(ctx, "/_api/web/title", nil); err != nil {
		var httpErr *http.HTTPError
		if errors.As(err, &httpErr) && httpErr.IsAuthFailure() {
			return nil, &CredentialError{Site: site, Err: err}
		}
		return nil, fmt.Errorf("connect to %s: %w", site, err)
	}

	return &httpSession{client: client, site: site}, nil
}

func (s *httpSession) Get(ctx context.Context, url string) ([]byte, error) {
	if s.closed {
		return nil, fmt.Errorf("session to %s is closed", s.site)
	}
	resp, err := s.client.Get(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (s *httpSession) GetFile(ctx context.Context, url, toPath string) error {
	body, err := s.Get(ctx, url)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(toPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(toPath, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", toPath, err)
	}
	return nil
}

func (s *httpSession) Close() error {
	s.closed = true
	return nil
}
