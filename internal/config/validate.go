package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if strings.TrimSpace(c.Maintenance.SystemUserEmail) == "" {
		return fmt.Errorf("maintenance.system_user_email is required")
	}

	if c.Shopping.MaxTxRetries == 0 {
		return fmt.Errorf("shopping.max_tx_retries must be > 0")
	}

	if c.Share.TokenBytes < 16 {
		return fmt.Errorf("share.token_bytes must be at least 16 (got %d)", c.Share.TokenBytes)
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerMin <= 0 {
		return fmt.Errorf("rate_limit.requests_per_min must be > 0 (got %d)", c.RateLimit.RequestsPerMin)
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", c.BaseURL)
	}
	if c.RequestsPerSec <= 0 {
		return fmt.Errorf("requests_per_sec must be > 0 (got %v)", c.RequestsPerSec)
	}
	if c.Burst < 1 {
		return fmt.Errorf("burst must be >= 1 (got %d)", c.Burst)
	}
	if c.FailureThreshold == 0 {
		return fmt.Errorf("failure_threshold must be > 0")
	}
	return nil
}
