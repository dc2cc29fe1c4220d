package sessiontransport

import (
	"context"
	"time"
)

// Revoker handles access-token revocation using JWT IDs (jti claims).
// Implementations can use Redis, databases, or in-memory storage; entries
// only need to live for the remaining lifetime of the token.
type Revoker interface {
	// IsRevoked reports whether a JWT ID is on the revocation list.
	IsRevoked(ctx context.Context, jti string) (bool, error)

	// Revoke puts a JWT ID on the revocation list for the given duration,
	// after which the token has expired anyway.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
}

// NoOpRevoker never revokes anything. Used when sign-out relies solely on
// refresh-credential deletion and access tokens are allowed to age out.
type NoOpRevoker struct{}

func (NoOpRevoker) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return false, nil
}

func (NoOpRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return nil
}
