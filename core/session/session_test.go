package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apertura/authcore/core/session"
	"github.com/apertura/authcore/pkg/fingerprint"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates session with generated credential", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		sess, err := session.New(userID, session.NewSessionParams{
			IP:        "203.0.113.7",
			UserAgent: "test-agent",
		}, time.Hour)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, sess.ID)
		assert.Equal(t, userID, sess.UserID)
		// 32 bytes base64url without padding is 43 characters.
		assert.Len(t, sess.Token, 43)
		assert.Equal(t, "203.0.113.7", sess.IP)
		assert.Equal(t, "test-agent", sess.UserAgent)
		assert.Equal(t, fingerprint.Device("test-agent", "203.0.113.7"), sess.Fingerprint)
		assert.False(t, sess.IsExpired())
		assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, time.Minute)
		assert.Equal(t, sess.CreatedAt, sess.LastActiveAt)
	})

	t.Run("credentials are unique across sessions", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			sess, err := session.New(uuid.New(), session.NewSessionParams{IP: "1.2.3.4"}, time.Hour)
			require.NoError(t, err)
			require.False(t, seen[sess.Token], "token collision")
			seen[sess.Token] = true
		}
	})

	t.Run("same device yields same fingerprint", func(t *testing.T) {
		t.Parallel()

		params := session.NewSessionParams{IP: "1.2.3.4", UserAgent: "agent"}
		first, err := session.New(uuid.New(), params, time.Hour)
		require.NoError(t, err)
		second, err := session.New(uuid.New(), params, time.Hour)
		require.NoError(t, err)

		assert.Equal(t, first.Fingerprint, second.Fingerprint)
		assert.NotEqual(t, first.Token, second.Token)
	})
}

func TestIsExpired(t *testing.T) {
	t.Parallel()

	expired, err := session.New(uuid.New(), session.NewSessionParams{IP: "1.2.3.4"}, -time.Second)
	require.NoError(t, err)
	assert.True(t, expired.IsExpired())

	valid, err := session.New(uuid.New(), session.NewSessionParams{IP: "1.2.3.4"}, time.Hour)
	require.NoError(t, err)
	assert.False(t, valid.IsExpired())
}

func TestIsCurrent(t *testing.T) {
	t.Parallel()

	sess, err := session.New(uuid.New(), session.NewSessionParams{IP: "1.2.3.4"}, time.Hour)
	require.NoError(t, err)

	assert.True(t, sess.IsCurrent(sess.Token))
	assert.False(t, sess.IsCurrent("some-other-token"))
	assert.False(t, sess.IsCurrent(""), "empty token never matches")
}
