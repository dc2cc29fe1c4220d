package authz

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/apertura/authcore/core/logger"
)

// Status is the computed authorization result for a user.
type Status struct {
	IsAdmin      bool       `json:"isAdmin"`
	IsSuperAdmin bool       `json:"isSuperAdmin"`
	Role         *AdminRole `json:"role,omitempty"`
	Validation   Validation `json:"validation"`
}

// notAdmin builds the canonical negative status.
func notAdmin(reason string) Status {
	return Status{Validation: Validation{Reason: reason}}
}

// Engine computes administrative status from role records, consulting a
// cache first and validating activity, expiry, and the IP allowlist.
//
// Role mutations must flow through Grant/Revoke (or be followed by an
// explicit Invalidate) so the cache never serves privilege stale past the
// mutating request.
type Engine struct {
	store Store
	cache *Cache
	log   *slog.Logger
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithCache attaches a status cache. Without one every Status call hits
// the store; results are identical either way.
func WithCache(cache *Cache) EngineOption {
	return func(e *Engine) {
		e.cache = cache
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) EngineOption {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine creates an authorization engine over the given role store.
func NewEngine(store Store, opts ...EngineOption) *Engine {
	e := &Engine{
		store: store,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Status computes the user's administrative status for the given client IP.
// An empty clientIP skips the allowlist check.
//
// Invalid roles are values, not errors: a missing, inactive, expired, or
// IP-blocked role yields IsAdmin=false with a reason. Only store failures
// return an error, and those are never cached.
//
// The computation is idempotent and side-effect-free apart from cache
// population. Concurrent callers for the same uncached key may each read
// the store; the redundant reads agree and are harmless.
func (e *Engine) Status(ctx context.Context, userID uuid.UUID, clientIP string) (Status, error) {
	if e.cache != nil {
		if status, ok := e.cache.Get(userID, clientIP); ok {
			return status, nil
		}
	}

	role, err := e.store.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return e.finish(userID, clientIP, notAdmin(ReasonNoRole)), nil
		}
		return Status{}, err
	}

	validation := role.Validate(time.Now(), clientIP)
	if !validation.Valid {
		e.log.DebugContext(ctx, "admin role rejected",
			logger.Component("authz"),
			logger.UserID(userID.String()),
			logger.ClientIP(clientIP),
			slog.String("reason", validation.Reason),
		)
		return e.finish(userID, clientIP, Status{Role: role, Validation: validation}), nil
	}

	status := Status{
		IsAdmin:      true,
		IsSuperAdmin: role.IsSuperAdmin(),
		Role:         role,
		Validation:   validation,
	}
	return e.finish(userID, clientIP, status), nil
}

// finish populates the cache before returning the computed status.
func (e *Engine) finish(userID uuid.UUID, clientIP string, status Status) Status {
	if e.cache != nil {
		e.cache.Set(userID, clientIP, status)
	}
	return status
}

// Grant creates or updates a role record and invalidates the user's cached
// status before returning, so a racing read never observes the old
// privilege past this call.
func (e *Engine) Grant(ctx context.Context, role *AdminRole) error {
	now := time.Now()
	if role.CreatedAt.IsZero() {
		role.CreatedAt = now
	}
	role.UpdatedAt = now

	if err := e.store.Save(ctx, role); err != nil {
		return err
	}
	e.Invalidate(role.UserID)
	return nil
}

// Revoke deletes the user's role record and invalidates the cache.
// Revoking a user without a role is not an error.
func (e *Engine) Revoke(ctx context.Context, userID uuid.UUID) error {
	if err := e.store.Delete(ctx, userID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	e.Invalidate(userID)
	return nil
}

// Invalidate drops every cached status for the user. Call it after any
// out-of-band mutation of the user's role record.
func (e *Engine) Invalidate(userID uuid.UUID) {
	if e.cache != nil {
		e.cache.Invalidate(userID)
	}
}
