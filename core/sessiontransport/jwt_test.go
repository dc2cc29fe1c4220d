package sessiontransport_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apertura/authcore/core/sessiontransport"
	"github.com/apertura/authcore/pkg/jwt"
)

// memoryRevoker is an in-process Revoker for tests.
type memoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]bool
}

func newMemoryRevoker() *memoryRevoker {
	return &memoryRevoker{revoked: make(map[string]bool)}
}

func (m *memoryRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[jti], nil
}

func (m *memoryRevoker) Revoke(_ context.Context, jti string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[jti] = true
	return nil
}

func TestJWTIssueVerify(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		transport, err := sessiontransport.NewJWT("test-secret", sessiontransport.WithIssuer("apertura"))
		require.NoError(t, err)

		userID := uuid.New()
		token, err := transport.Issue(userID)
		require.NoError(t, err)

		got, err := transport.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		t.Parallel()

		transport, err := sessiontransport.NewJWT("test-secret",
			sessiontransport.WithAccessTTL(time.Nanosecond))
		require.NoError(t, err)

		token, err := transport.Issue(uuid.New())
		require.NoError(t, err)

		time.Sleep(time.Second + time.Millisecond)

		_, err = transport.Verify(ctx, token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("foreign signature rejected", func(t *testing.T) {
		t.Parallel()

		issuer, err := sessiontransport.NewJWT("secret-one")
		require.NoError(t, err)
		verifier, err := sessiontransport.NewJWT("secret-two")
		require.NoError(t, err)

		token, err := issuer.Issue(uuid.New())
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, token)
		assert.ErrorIs(t, err, jwt.ErrInvalidSignature)
	})

	t.Run("default TTL is thirty minutes", func(t *testing.T) {
		t.Parallel()

		transport, err := sessiontransport.NewJWT("test-secret")
		require.NoError(t, err)
		assert.Equal(t, 30*time.Minute, transport.AccessTTL())
	})
}

func TestJWTRevocation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("revoked token rejected", func(t *testing.T) {
		t.Parallel()

		revoker := newMemoryRevoker()
		transport, err := sessiontransport.NewJWT("test-secret",
			sessiontransport.WithRevoker(revoker))
		require.NoError(t, err)

		userID := uuid.New()
		token, err := transport.Issue(userID)
		require.NoError(t, err)

		// Still valid before revocation.
		_, err = transport.Verify(ctx, token)
		require.NoError(t, err)

		require.NoError(t, transport.Revoke(ctx, token))

		_, err = transport.Verify(ctx, token)
		assert.ErrorIs(t, err, sessiontransport.ErrRevokedToken)
	})

	t.Run("revoking garbage is a no-op", func(t *testing.T) {
		t.Parallel()

		transport, err := sessiontransport.NewJWT("test-secret",
			sessiontransport.WithRevoker(newMemoryRevoker()))
		require.NoError(t, err)

		assert.NoError(t, transport.Revoke(ctx, "not-a-token"))
	})

	t.Run("tokens verify with the stock noop revoker", func(t *testing.T) {
		t.Parallel()

		transport, err := sessiontransport.NewJWT("test-secret")
		require.NoError(t, err)

		token, err := transport.Issue(uuid.New())
		require.NoError(t, err)
		require.NoError(t, transport.Revoke(ctx, token))

		// NoOpRevoker never actually revokes.
		_, err = transport.Verify(ctx, token)
		assert.NoError(t, err)
	})
}

func TestNewJWTFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("missing secret fails", func(t *testing.T) {
		t.Parallel()

		_, err := sessiontransport.NewJWTFromConfig(sessiontransport.Config{})
		assert.Error(t, err)
	})

	t.Run("applies config values", func(t *testing.T) {
		t.Parallel()

		transport, err := sessiontransport.NewJWTFromConfig(sessiontransport.Config{
			SecretKey: "test-secret",
			AccessTTL: 10 * time.Minute,
			Issuer:    "apertura",
		})
		require.NoError(t, err)
		assert.Equal(t, 10*time.Minute, transport.AccessTTL())
	})
}
