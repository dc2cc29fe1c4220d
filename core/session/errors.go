package session

import "errors"

var (
	// ErrNotFound is returned when no session matches the lookup. The
	// message is deliberately generic: it never reveals whether the
	// identifier or the credential was wrong.
	ErrNotFound = errors.New("session: invalid session")
	// ErrExpired is returned when a session's expiry has passed. Detecting
	// an expired session also deletes it.
	ErrExpired = errors.New("session: session has expired")
	// ErrDuplicateToken is returned by stores when a refresh credential
	// collides with an existing record.
	ErrDuplicateToken = errors.New("session: duplicate refresh token")
	// ErrTokenGeneration is returned when the random source fails.
	ErrTokenGeneration = errors.New("session: failed to generate token")
	// ErrAccountBanned is returned when sign-in is attempted for a banned
	// account.
	ErrAccountBanned = errors.New("session: account is banned")
	// ErrCurrentSession is returned when targeting the caller's own current
	// session with the per-session sign-out; plain sign-out must be used
	// instead.
	ErrCurrentSession = errors.New("session: cannot revoke the current session")
)
