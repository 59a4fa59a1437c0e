package credentials

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile mirrors the viadot config layout: a sources map keyed by the
// config key, each entry holding that source's credential fields.
type configFile struct {
	Sources map[string]map[string]any `yaml:"sources"`
}

// ConfigPath returns the config file location: VIADOT_CONFIG_PATH when set,
// otherwise ~/.config/viadot/config.yaml.
func ConfigPath() string {
	if path := os.Getenv("VIADOT_CONFIG_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "viadot", "config.yaml")
	}
	return filepath.Join(home, ".config", "viadot", "config.yaml")
}

// GetSourceCredentials looks up the credential mapping stored under key in
// the config file. A missing file or missing key yields nil without error;
// a malformed file is an error.
func GetSourceCredentials(key string) (map[string]any, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg.Sources[key], nil
}
