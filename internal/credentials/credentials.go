// Package credentials resolves connector credentials from an explicit
// record, a named key in the viadot config file, or an external secret
// store reference, in that order of preference.
package credentials

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned when none of the three credential
// inputs (explicit record, config key, secret name) yields usable data.
var ErrMissingCredentials = errors.New("missing credentials: provide an explicit record, a config key, or a secret name")

// Resolve produces one credential mapping, preferring the explicit record,
// then the config-file entry under configKey, then the named secret from
// the store. It fails before any network call when nothing is usable.
func Resolve(explicit map[string]any, configKey, secretName string, store SecretStore) (map[string]any, error) {
	if len(explicit) == 0 && configKey == "" && secretName == "" {
		return nil, ErrMissingCredentials
	}

	if len(explicit) > 0 {
		return explicit, nil
	}

	if configKey != "" {
		creds, err := GetSourceCredentials(configKey)
		if err != nil {
			return nil, fmt.Errorf("config lookup %q: %w", configKey, err)
		}
		if len(creds) > 0 {
			return creds, nil
		}
	}

	if secretName != "" {
		if store == nil {
			store = DefaultSecretStore()
		}
		creds, err := store.Get(secretName)
		if err != nil {
			return nil, fmt.Errorf("secret lookup %q: %w", secretName, err)
		}
		if len(creds) > 0 {
			return creds, nil
		}
	}

	return nil, ErrMissingCredentials
}

// String extracts a string field from a credential mapping.
func String(creds map[string]any, key string) string {
	if v, ok := creds[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
