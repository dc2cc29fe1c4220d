package authz

import "time"

// Config provides environment-based configuration for the authorization
// layer.
type Config struct {
	// CacheTTL is the default freshness window of cached status results.
	CacheTTL time.Duration `env:"AUTH_CACHE_TTL" envDefault:"5m"`
}

// NewCacheFromConfig creates a status cache with the configured TTL.
func NewCacheFromConfig(cfg Config) *Cache {
	return NewCache(cfg.CacheTTL)
}
