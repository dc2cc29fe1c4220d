package session

import "time"

// Config holds session manager configuration, loadable from the
// environment via core/config.
type Config struct {
	// RefreshTTL is the lifetime of a refresh credential (14 days default).
	RefreshTTL time.Duration `env:"AUTH_REFRESH_TTL" envDefault:"336h"`

	// TouchInterval throttles last-active updates on refresh; 0 disables
	// touching entirely.
	TouchInterval time.Duration `env:"AUTH_TOUCH_INTERVAL" envDefault:"5m"`

	// CleanupInterval is the period of the expired-session sweep.
	CleanupInterval time.Duration `env:"AUTH_CLEANUP_INTERVAL" envDefault:"1h"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		RefreshTTL:      14 * 24 * time.Hour,
		TouchInterval:   5 * time.Minute,
		CleanupInterval: time.Hour,
	}
}
