package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Audit.validate(); err != nil {
		return fmt.Errorf("audit: %w", err)
	}

	if strings.TrimSpace(c.Storage.Bucket) == "" {
		return fmt.Errorf("storage.bucket is required")
	}

	if c.RateLimit.SubmitPerMinute <= 0 {
		return fmt.Errorf("rate_limit.submit_per_minute must be > 0 (got %d)", c.RateLimit.SubmitPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (a *AuditConfig) validate() error {
	a.CompanyEmailDomain = strings.TrimPrefix(strings.TrimSpace(a.CompanyEmailDomain), "@")
	if a.CompanyEmailDomain == "" {
		return fmt.Errorf("company_email_domain is required")
	}

	switch a.Consistency {
	case ConsistencyNone, ConsistencyCompensate, ConsistencyTransaction:
	default:
		return fmt.Errorf("consistency must be one of none, compensate, transaction (got %q)", a.Consistency)
	}

	if a.RetryMaxAttempts < 1 {
		return fmt.Errorf("retry_max_attempts must be >= 1 (got %d)", a.RetryMaxAttempts)
	}
	if a.RetryBaseDelay < 0 {
		return fmt.Errorf("retry_base_delay must be >= 0 (got %v)", a.RetryBaseDelay)
	}
	if a.SearchLimit <= 0 || a.SearchLimit > 1000 {
		return fmt.Errorf("search_limit must be in 1..1000 (got %d)", a.SearchLimit)
	}

	return nil
}
