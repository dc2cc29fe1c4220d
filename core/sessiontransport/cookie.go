package sessiontransport

import (
	"errors"
	"net/http"
	"time"
)

// Cookie writes and reads the refresh credential as an HTTP cookie.
//
// The cookie is always HttpOnly. In production it is additionally Secure
// with SameSite=None, since the web client is served from a different
// origin than the API; outside production SameSite=Lax keeps local
// development working over plain HTTP.
type Cookie struct {
	name       string
	maxAge     int
	production bool
}

// NewCookie creates a refresh-cookie transport. The cookie max-age equals
// the refresh credential TTL so the browser drops it together with the
// server-side expiry.
func NewCookie(name string, refreshTTL time.Duration, production bool) *Cookie {
	return &Cookie{
		name:       name,
		maxAge:     int(refreshTTL.Seconds()),
		production: production,
	}
}

// Set writes the refresh credential cookie to the response.
func (c *Cookie) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, c.build(token, c.maxAge))
}

// Read extracts the refresh credential from the request.
// Returns ErrNoToken when the cookie is absent or empty.
func (c *Cookie) Read(r *http.Request) (string, error) {
	cookie, err := r.Cookie(c.name)
	if err != nil || cookie.Value == "" {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}

// Clear expires the refresh credential cookie on the client.
func (c *Cookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, c.build("", -1))
}

func (c *Cookie) build(value string, maxAge int) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if c.production {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   c.production,
		SameSite: sameSite,
	}
}

// ErrNoToken is returned when the request carries no refresh credential.
var ErrNoToken = errors.New("sessiontransport: no token")
