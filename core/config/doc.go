// Package config provides type-safe environment variable loading with
// per-type caching using Go generics.
//
// A .env file is loaded automatically on first use; parsing is handled by
// the caarlos0/env library via `env` struct tags.
//
//	type SessionConfig struct {
//		RefreshTTL time.Duration `env:"AUTH_REFRESH_TTL" envDefault:"336h"`
//		AccessTTL  time.Duration `env:"AUTH_ACCESS_TTL" envDefault:"30m"`
//	}
//
//	var cfg SessionConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is loaded only once per process lifetime and
// cached, so different packages may load the same type independently and
// observe identical values.
package config
