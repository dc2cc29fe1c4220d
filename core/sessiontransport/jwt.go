package sessiontransport

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/apertura/authcore/pkg/jwt"
)

// defaultAccessTTL bounds how long a stolen access token stays usable.
const defaultAccessTTL = 30 * time.Minute

// AccessClaims is the payload of an access token: the user identity plus
// the standard temporal claims.
type AccessClaims struct {
	jwt.StandardClaims
	UserID string `json:"userId"`
}

// JWT issues and verifies short-lived signed access tokens asserting a
// user identity. Supports optional token revocation through the Revoker
// interface.
type JWT struct {
	service *jwt.Service
	revoker Revoker
	ttl     time.Duration
	issuer  string
}

// JWTOption configures the JWT transport.
type JWTOption func(*JWT)

// WithAccessTTL overrides the access token lifetime (default 30 minutes).
func WithAccessTTL(ttl time.Duration) JWTOption {
	return func(t *JWT) {
		if ttl > 0 {
			t.ttl = ttl
		}
	}
}

// WithIssuer sets the issuer claim on generated tokens.
func WithIssuer(issuer string) JWTOption {
	return func(t *JWT) {
		t.issuer = issuer
	}
}

// WithRevoker attaches a revocation list consulted on verify.
func WithRevoker(r Revoker) JWTOption {
	return func(t *JWT) {
		t.revoker = r
	}
}

// NewJWT creates an access-token transport signing with the given secret.
func NewJWT(signingKey string, opts ...JWTOption) (*JWT, error) {
	service, err := jwt.NewFromString(signingKey)
	if err != nil {
		return nil, err
	}

	t := &JWT{
		service: service,
		revoker: NoOpRevoker{},
		ttl:     defaultAccessTTL,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// AccessTTL returns the configured access token lifetime.
func (t *JWT) AccessTTL() time.Duration {
	return t.ttl
}

// Issue generates a signed access token for the user, valid for the
// configured TTL. Each token carries a unique jti for revocation.
func (t *JWT) Issue(userID uuid.UUID) (string, error) {
	now := time.Now()
	return t.service.Generate(AccessClaims{
		StandardClaims: jwt.StandardClaims{
			ID:        uuid.New().String(),
			Subject:   userID.String(),
			Issuer:    t.issuer,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(t.ttl).Unix(),
		},
		UserID: userID.String(),
	})
}

// Verify parses and validates an access token and returns the asserted
// user identity. Revoked tokens fail with ErrRevokedToken; expired and
// malformed ones surface the underlying jwt sentinel.
func (t *JWT) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	var claims AccessClaims
	if err := t.service.Parse(token, &claims); err != nil {
		return uuid.Nil, err
	}

	if claims.ID != "" {
		revoked, err := t.revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			return uuid.Nil, err
		}
		if revoked {
			return uuid.Nil, ErrRevokedToken
		}
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, jwt.ErrInvalidClaims
	}
	return userID, nil
}

// Revoke adds the token's jti to the revocation list for the remainder of
// its lifetime. Tokens that no longer parse need no revocation and are
// ignored.
func (t *JWT) Revoke(ctx context.Context, token string) error {
	var claims AccessClaims
	if err := t.service.Parse(token, &claims); err != nil {
		return nil
	}
	if claims.ID == "" {
		return nil
	}

	remaining := time.Until(time.Unix(claims.ExpiresAt, 0))
	if remaining <= 0 {
		return nil
	}
	return t.revoker.Revoke(ctx, claims.ID, remaining)
}

// ErrRevokedToken is returned when a structurally valid token has been
// revoked before its natural expiry.
var ErrRevokedToken = errors.New("sessiontransport: token has been revoked")
