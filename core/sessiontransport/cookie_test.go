package sessiontransport_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apertura/authcore/core/sessiontransport"
)

func recordedCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestCookie(t *testing.T) {
	t.Parallel()

	t.Run("set in development", func(t *testing.T) {
		t.Parallel()

		transport := sessiontransport.NewCookie("refreshToken", 14*24*time.Hour, false)
		rec := httptest.NewRecorder()
		transport.Set(rec, "the-credential")

		c := recordedCookie(t, rec, "refreshToken")
		assert.Equal(t, "the-credential", c.Value)
		assert.True(t, c.HttpOnly)
		assert.False(t, c.Secure)
		assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
		assert.Equal(t, int((14 * 24 * time.Hour).Seconds()), c.MaxAge)
		assert.Equal(t, "/", c.Path)
	})

	t.Run("set in production", func(t *testing.T) {
		t.Parallel()

		transport := sessiontransport.NewCookie("refreshToken", time.Hour, true)
		rec := httptest.NewRecorder()
		transport.Set(rec, "the-credential")

		c := recordedCookie(t, rec, "refreshToken")
		assert.True(t, c.Secure)
		assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	})

	t.Run("read round trip", func(t *testing.T) {
		t.Parallel()

		transport := sessiontransport.NewCookie("refreshToken", time.Hour, false)
		rec := httptest.NewRecorder()
		transport.Set(rec, "the-credential")

		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
		for _, c := range rec.Result().Cookies() {
			req.AddCookie(c)
		}

		token, err := transport.Read(req)
		require.NoError(t, err)
		assert.Equal(t, "the-credential", token)
	})

	t.Run("read without cookie", func(t *testing.T) {
		t.Parallel()

		transport := sessiontransport.NewCookie("refreshToken", time.Hour, false)
		req := httptest.NewRequest(http.MethodPost, "/refresh", nil)

		_, err := transport.Read(req)
		assert.ErrorIs(t, err, sessiontransport.ErrNoToken)
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		t.Parallel()

		transport := sessiontransport.NewCookie("refreshToken", time.Hour, false)
		rec := httptest.NewRecorder()
		transport.Clear(rec)

		c := recordedCookie(t, rec, "refreshToken")
		assert.Empty(t, c.Value)
		assert.Negative(t, c.MaxAge)
	})
}
