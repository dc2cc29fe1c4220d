package fingerprint_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apertura/authcore/pkg/fingerprint"
)

func TestDevice(t *testing.T) {
	t.Parallel()

	t.Run("deterministic for same inputs", func(t *testing.T) {
		t.Parallel()

		ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Chrome/120.0"
		ip := "203.0.113.7"

		first := fingerprint.Device(ua, ip)
		second := fingerprint.Device(ua, ip)

		require.NotEmpty(t, first)
		assert.Equal(t, first, second)
	})

	t.Run("produces hex sha256 digest", func(t *testing.T) {
		t.Parallel()

		fp := fingerprint.Device("agent", "1.2.3.4")

		require.Len(t, fp, 64)
		_, err := hex.DecodeString(fp)
		assert.NoError(t, err)

		expected := sha256.Sum256([]byte("agent-1.2.3.4"))
		assert.Equal(t, hex.EncodeToString(expected[:]), fp)
	})

	t.Run("different inputs yield different fingerprints", func(t *testing.T) {
		t.Parallel()

		base := fingerprint.Device("agent", "1.2.3.4")

		assert.NotEqual(t, base, fingerprint.Device("agent", "1.2.3.5"))
		assert.NotEqual(t, base, fingerprint.Device("other-agent", "1.2.3.4"))
	})

	t.Run("empty components fall back to Unknown", func(t *testing.T) {
		t.Parallel()

		expected := sha256.Sum256([]byte("Unknown-Unknown"))
		assert.Equal(t, hex.EncodeToString(expected[:]), fingerprint.Device("", ""))

		partial := sha256.Sum256([]byte("Unknown-1.2.3.4"))
		assert.Equal(t, hex.EncodeToString(partial[:]), fingerprint.Device("", "1.2.3.4"))
	})
}
