package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/apertura/authcore/pkg/fingerprint"
)

// Session represents one authenticated device/browser instance.
// The UserAgent and IP captured at creation are immutable; only
// LastActiveAt advances afterwards.
type Session struct {
	// ID is the stable unique session identifier.
	ID uuid.UUID `json:"id"`

	// UserID is the owning user identity.
	UserID uuid.UUID `json:"userId"`

	// Token is the opaque refresh credential (32 random bytes, base64url).
	// It is the sole lookup key for refresh and sign-out and is unique
	// across all sessions.
	Token string `json:"-"`

	// Fingerprint is the derived device fingerprint; non-unique, since a
	// user signing in repeatedly from the same device produces the same
	// value.
	Fingerprint string `json:"-"`

	IP        string `json:"ipAddress"`
	UserAgent string `json:"userAgent"`

	// ExpiresAt bounds the session's usability: it is valid only while
	// now < ExpiresAt.
	ExpiresAt time.Time `json:"expiresAt"`

	CreatedAt    time.Time `json:"createdAt"`
	LastActiveAt time.Time `json:"lastActive"`
}

// NewSessionParams carries the request attributes captured at sign-in.
type NewSessionParams struct {
	IP        string
	UserAgent string
}

// New creates a session for the user with a freshly generated refresh
// credential and an expiry of now+ttl. The device fingerprint is derived
// from the User-Agent and IP.
func New(userID uuid.UUID, params NewSessionParams, ttl time.Duration) (Session, error) {
	token, err := generateToken()
	if err != nil {
		return Session{}, errors.Join(ErrTokenGeneration, err)
	}

	now := time.Now()
	return Session{
		ID:           uuid.New(),
		UserID:       userID,
		Token:        token,
		Fingerprint:  fingerprint.Device(params.UserAgent, params.IP),
		IP:           params.IP,
		UserAgent:    params.UserAgent,
		ExpiresAt:    now.Add(ttl),
		CreatedAt:    now,
		LastActiveAt: now,
	}, nil
}

// IsExpired reports whether the session's expiry has passed.
func (s Session) IsExpired() bool {
	return !time.Now().Before(s.ExpiresAt)
}

// IsCurrent reports whether the given refresh credential identifies this
// session.
func (s Session) IsCurrent(token string) bool {
	return token != "" && s.Token == token
}

// generateToken creates a cryptographically secure random token using
// 32 bytes (256 bits) encoded as base64 URL-safe string without padding.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
