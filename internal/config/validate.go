package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be positive (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		return fmt.Errorf("auth.refresh_token_ttl must exceed access_token_ttl")
	}

	if c.Sync.MaxBatchSize <= 0 {
		return fmt.Errorf("sync.max_batch_size must be positive (got %d)", c.Sync.MaxBatchSize)
	}
	if c.Sync.MaxBodyBytes <= 0 {
		return fmt.Errorf("sync.max_body_bytes must be positive (got %d)", c.Sync.MaxBodyBytes)
	}

	if c.RateLimit.SyncPerMinute <= 0 {
		return fmt.Errorf("rate_limit.sync_per_minute must be positive (got %d)", c.RateLimit.SyncPerMinute)
	}
	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be positive (got %d)", c.RateLimit.AuthPerMinute)
	}

	return nil
}
