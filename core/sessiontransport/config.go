package sessiontransport

import (
	"fmt"
	"time"
)

// Config provides environment-based configuration for both transports.
type Config struct {
	// SecretKey signs access tokens; it has no default on purpose.
	SecretKey string `env:"AUTH_JWT_SECRET,required"`

	// AccessTTL is the access token lifetime.
	AccessTTL time.Duration `env:"AUTH_ACCESS_TTL" envDefault:"30m"`

	// Issuer is the iss claim on generated tokens.
	Issuer string `env:"AUTH_JWT_ISSUER" envDefault:"apertura"`

	// CookieName is the refresh credential cookie name.
	CookieName string `env:"AUTH_REFRESH_COOKIE" envDefault:"refreshToken"`

	// Production toggles Secure + SameSite=None on the refresh cookie.
	Production bool `env:"AUTH_PRODUCTION" envDefault:"false"`
}

// NewCookieFromConfig creates the refresh-cookie transport. The TTL comes
// from the session manager so cookie max-age and store expiry agree.
func NewCookieFromConfig(cfg Config, refreshTTL time.Duration) *Cookie {
	return NewCookie(cfg.CookieName, refreshTTL, cfg.Production)
}

// NewJWTFromConfig creates the access-token transport from configuration.
func NewJWTFromConfig(cfg Config, opts ...JWTOption) (*JWT, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("sessiontransport: JWT secret key is required")
	}

	base := []JWTOption{
		WithAccessTTL(cfg.AccessTTL),
		WithIssuer(cfg.Issuer),
	}
	return NewJWT(cfg.SecretKey, append(base, opts...)...)
}
