package authz

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the persistence interface for admin role records.
// Implementations must enforce the one-record-per-user constraint and
// handle concurrent access safely.
type Store interface {
	// GetByUserID returns the role record for a user, or ErrNotFound.
	GetByUserID(ctx context.Context, userID uuid.UUID) (*AdminRole, error)

	// Save inserts or replaces the user's role record.
	Save(ctx context.Context, role *AdminRole) error

	// Delete removes the user's role record. Deleting an absent record
	// returns ErrNotFound.
	Delete(ctx context.Context, userID uuid.UUID) error
}
