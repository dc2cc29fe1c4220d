package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store defines the persistence interface for session records.
// Implementations must enforce uniqueness of the refresh credential
// (returning ErrDuplicateToken on collision) and handle concurrent
// access safely.
type Store interface {
	// Create inserts a new session record.
	Create(ctx context.Context, sess *Session) error

	// GetByID returns a session by its identifier, or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Session, error)

	// GetByToken returns the session holding the refresh credential,
	// or ErrNotFound.
	GetByToken(ctx context.Context, token string) (*Session, error)

	// FindActive returns an unexpired session for the user with the given
	// device fingerprint, or ErrNotFound. Used to classify sign-ins as
	// "new device".
	FindActive(ctx context.Context, userID uuid.UUID, fp string) (*Session, error)

	// ListByUser returns the user's unexpired sessions, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Session, error)

	// Touch advances the session's last-active timestamp.
	Touch(ctx context.Context, id uuid.UUID, at time.Time) error

	// Delete removes a session by ID. Absent sessions return ErrNotFound.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByToken removes the session holding the refresh credential.
	// Absent sessions return ErrNotFound.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteOthers removes every unexpired session of the user except the
	// one holding currentToken, returning the number removed.
	DeleteOthers(ctx context.Context, userID uuid.UUID, currentToken string) (int64, error)

	// DeleteExpired removes all expired sessions and returns the count.
	DeleteExpired(ctx context.Context) (int64, error)
}
