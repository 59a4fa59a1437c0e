package lake

import (
	"fmt"
	"net/url"

	"github.com/adrian-wojcik/viadot/internal/credentials"
)

// Config captures the object-store destination configuration.
type Config struct {
	EndpointURL     string
	Region          string
	UseSSL          bool
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

// ConfigFromMap builds a Config from a resolved credential mapping.
func ConfigFromMap(creds map[string]any) (*Config, error) {
	cfg := &Config{
		EndpointURL:     credentials.String(creds, "endpoint_url"),
		Region:          credentials.String(creds, "region"),
		AccessKeyID:     credentials.String(creds, "access_key_id"),
		SecretAccessKey: credentials.String(creds, "secret_access_key"),
		Bucket:          credentials.String(creds, "bucket"),
	}
	if v, ok := creds["use_ssl"].(bool); ok {
		cfg.UseSSL = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces required fields eagerly, before any network call.
func (c *Config) Validate() error {
	if c.EndpointURL == "" {
		return wrapError(CodeEndpointUnreachable, false, fmt.Errorf("endpoint_url is required"))
	}
	if _, err := url.Parse(c.EndpointURL); err != nil {
		return wrapError(CodeEndpointUnreachable, false, err)
	}
	if c.AccessKeyID == "" || c.SecretAccessKey == "" {
		return wrapError(CodeAuthInvalid, false, fmt.Errorf("access_key_id and secret_access_key are required"))
	}
	if c.Bucket == "" {
		return wrapError(CodeBucketNotFound, false, fmt.Errorf("bucket is required"))
	}
	return nil
}
