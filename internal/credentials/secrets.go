package credentials

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SecretStore resolves a named secret into a credential mapping. The
// production deployment points this at the platform key vault; tests and
// local runs use the environment-backed store.
type SecretStore interface {
	Get(name string) (map[string]any, error)
}

// EnvSecretStore reads secrets from environment variables holding JSON
// payloads. The variable name is Prefix plus the upper-cased secret name
// with dashes mapped to underscores.
type EnvSecretStore struct {
	Prefix string
}

// DefaultSecretStore returns the environment-backed store with the
// VIADOT_SECRET_ prefix.
func DefaultSecretStore() *EnvSecretStore {
	return &EnvSecretStore{Prefix: "VIADOT_SECRET_"}
}

// Get resolves the named secret. An unset variable yields nil without
// error so resolution can fall through; a malformed payload is an error.
func (s *EnvSecretStore) Get(name string) (map[string]any, error) {
	key := s.Prefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
	raw := os.Getenv(key)
	if raw == "" {
		return nil, nil
	}

	var creds map[string]any
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, fmt.Errorf("secret %s is not valid JSON: %w", name, err)
	}
	return creds, nil
}
