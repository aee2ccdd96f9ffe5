package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Auth.Enabled() && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	switch c.Catalog.Source {
	case CatalogSourceSeed:
	case CatalogSourceFile:
		if c.Catalog.SeedPath == "" {
			return fmt.Errorf("catalog.seed_path is required for source %q", CatalogSourceFile)
		}
	case CatalogSourcePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for source %q", CatalogSourcePostgres)
		}
	default:
		return fmt.Errorf("catalog.source must be one of seed, file, postgres (got %q)", c.Catalog.Source)
	}

	if c.Search.Latency < 0 {
		return fmt.Errorf("search.latency must be >= 0 (got %v)", c.Search.Latency)
	}

	switch c.Recommend.Strategy {
	case StrategyOverlap, StrategyRandom:
	default:
		return fmt.Errorf("recommend.strategy must be overlap or random (got %q)", c.Recommend.Strategy)
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.RequestsPerMinute > 0 && c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate_limit.burst must be > 0 (got %d)", c.RateLimit.Burst)
	}

	return nil
}
