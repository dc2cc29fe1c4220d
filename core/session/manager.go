package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/apertura/authcore/core/logger"
	"github.com/apertura/authcore/pkg/async"
	"github.com/apertura/authcore/pkg/fingerprint"
	"github.com/apertura/authcore/pkg/useragent"
)

// NewDeviceNotification describes a sign-in from a device the user has no
// active session for.
type NewDeviceNotification struct {
	UserID      uuid.UUID
	DeviceName  string
	BrowserName string
	IP          string
	At          time.Time
}

// Notifier delivers best-effort user notifications. Errors are observed
// and logged but never cause the parent operation to fail.
type Notifier interface {
	NotifyNewDevice(ctx context.Context, n NewDeviceNotification) error
}

// AccountChecker answers whether an account is banned. Sign-in fails
// closed: a checker error rejects the attempt rather than letting a
// potentially banned account through.
type AccountChecker interface {
	IsBanned(ctx context.Context, userID uuid.UUID) (bool, error)
}

// SignInParams carries an already-verified identity plus the request
// attributes captured for device classification. Credential verification
// itself happens upstream.
type SignInParams struct {
	UserID    uuid.UUID
	IP        string
	UserAgent string
}

// SignInResult is the outcome of a successful sign-in.
type SignInResult struct {
	Session Session
	// NewDevice is true when the user had no unexpired session with the
	// same device fingerprint at sign-in time.
	NewDevice bool
}

// SessionInfo is a display-ready row for the "your active sessions" list.
type SessionInfo struct {
	ID          uuid.UUID `json:"id"`
	DeviceName  string    `json:"deviceName"`
	BrowserName string    `json:"browserName"`
	IPAddress   string    `json:"ipAddress"`
	IsCurrent   bool      `json:"isCurrentSession"`
	LastActive  time.Time `json:"lastActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Manager orchestrates the session lifecycle: sign-in, refresh, sign-out,
// multi-device management, and the expired-session sweep.
type Manager struct {
	store           Store
	refreshTTL      time.Duration
	touchInterval   time.Duration
	cleanupInterval time.Duration
	notifier        Notifier
	accounts        AccountChecker
	log             *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithRefreshTTL overrides the refresh credential lifetime.
func WithRefreshTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.refreshTTL = ttl
		}
	}
}

// WithTouchInterval sets the minimum time between last-active updates on
// refresh. Zero disables touching.
func WithTouchInterval(interval time.Duration) Option {
	return func(m *Manager) {
		m.touchInterval = interval
	}
}

// WithCleanupInterval sets the period of the expired-session sweep.
func WithCleanupInterval(interval time.Duration) Option {
	return func(m *Manager) {
		if interval > 0 {
			m.cleanupInterval = interval
		}
	}
}

// WithNotifier attaches a new-device notifier.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) {
		m.notifier = n
	}
}

// WithAccountChecker attaches a banned-account checker.
func WithAccountChecker(c AccountChecker) Option {
	return func(m *Manager) {
		m.accounts = c
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// NewManager creates a session manager over the given store.
func NewManager(store Store, opts ...Option) *Manager {
	cfg := DefaultConfig()
	m := &Manager{
		store:           store,
		refreshTTL:      cfg.RefreshTTL,
		touchInterval:   cfg.TouchInterval,
		cleanupInterval: cfg.CleanupInterval,
		log:             slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewManagerFromConfig creates a session manager from a Config.
func NewManagerFromConfig(cfg Config, store Store, opts ...Option) *Manager {
	base := []Option{
		WithRefreshTTL(cfg.RefreshTTL),
		WithTouchInterval(cfg.TouchInterval),
		WithCleanupInterval(cfg.CleanupInterval),
	}
	return NewManager(store, append(base, opts...)...)
}

// RefreshTTL returns the configured refresh credential lifetime, used by
// the transport layer to set cookie max-age.
func (m *Manager) RefreshTTL() time.Duration {
	return m.refreshTTL
}

// SignIn creates a fresh session for an already-verified user. When the
// user has no unexpired session with the same device fingerprint the
// sign-in is classified as a new device and a notification is emitted in
// the background; notification failures are logged and swallowed.
func (m *Manager) SignIn(ctx context.Context, params SignInParams) (SignInResult, error) {
	if m.accounts != nil {
		banned, err := m.accounts.IsBanned(ctx, params.UserID)
		if err != nil {
			return SignInResult{}, err
		}
		if banned {
			return SignInResult{}, ErrAccountBanned
		}
	}

	fp := fingerprint.Device(params.UserAgent, params.IP)

	newDevice := false
	if _, err := m.store.FindActive(ctx, params.UserID, fp); err != nil {
		if !errors.Is(err, ErrNotFound) {
			return SignInResult{}, err
		}
		newDevice = true
	}

	sess, err := New(params.UserID, NewSessionParams{
		IP:        params.IP,
		UserAgent: params.UserAgent,
	}, m.refreshTTL)
	if err != nil {
		return SignInResult{}, err
	}

	if err := m.store.Create(ctx, &sess); err != nil {
		return SignInResult{}, err
	}

	if newDevice {
		m.notifyNewDevice(ctx, sess)
	}

	return SignInResult{Session: sess, NewDevice: newDevice}, nil
}

// notifyNewDevice submits the notification in the background, detached
// from the request's cancellation. The future's error is drained into the
// log so the goroutine never leaks an unobserved failure.
func (m *Manager) notifyNewDevice(ctx context.Context, sess Session) {
	if m.notifier == nil {
		return
	}

	device, browser := useragent.Classify(sess.UserAgent)
	notification := NewDeviceNotification{
		UserID:      sess.UserID,
		DeviceName:  device,
		BrowserName: browser,
		IP:          sess.IP,
		At:          sess.CreatedAt,
	}

	future := async.Exec(context.WithoutCancel(ctx), notification, m.notifier.NotifyNewDevice)
	go func() {
		if err := future.Await(); err != nil {
			m.log.Warn("new device notification failed",
				logger.Component("session"),
				logger.UserID(notification.UserID.String()),
				logger.Error(err),
			)
		}
	}()
}

// Refresh resolves a refresh credential to its session. Unknown
// credentials return ErrNotFound; expired sessions are deleted as a side
// effect of being detected and return ErrExpired. The credential is not
// rotated. On success the session's last-active timestamp is advanced,
// throttled by the touch interval.
func (m *Manager) Refresh(ctx context.Context, token string) (Session, error) {
	if token == "" {
		return Session{}, ErrNotFound
	}

	sess, err := m.store.GetByToken(ctx, token)
	if err != nil {
		return Session{}, err
	}

	if sess.IsExpired() {
		if err := m.store.Delete(ctx, sess.ID); err != nil && !errors.Is(err, ErrNotFound) {
			m.log.Warn("failed to delete expired session",
				logger.Component("session"),
				logger.Error(err),
			)
		}
		return Session{}, ErrExpired
	}

	m.touch(ctx, sess)
	return *sess, nil
}

// touch advances the session's last-active timestamp if the touch interval
// has elapsed. Failures are logged only: staleness of the display-level
// last-active field never fails a refresh.
func (m *Manager) touch(ctx context.Context, sess *Session) {
	if m.touchInterval <= 0 {
		return
	}

	now := time.Now()
	if now.Sub(sess.LastActiveAt) < m.touchInterval {
		return
	}

	if err := m.store.Touch(ctx, sess.ID, now); err != nil && !errors.Is(err, ErrNotFound) {
		m.log.Warn("failed to touch session",
			logger.Component("session"),
			logger.Error(err),
		)
		return
	}
	sess.LastActiveAt = now
}

// SignOut deletes the session holding the refresh credential. Idempotent:
// an absent session (already signed out, already expired and swept, or a
// racing sign-out) is not an error.
func (m *Manager) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.store.DeleteByToken(ctx, token); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// SignOutOthers deletes every unexpired session of the user except the one
// holding currentToken and returns the count removed.
func (m *Manager) SignOutOthers(ctx context.Context, userID uuid.UUID, currentToken string) (int64, error) {
	count, err := m.store.DeleteOthers(ctx, userID, currentToken)
	if err != nil {
		return 0, err
	}

	m.log.Info("signed out other devices",
		logger.Component("session"),
		logger.UserID(userID.String()),
		logger.Count("deleted", int(count)),
	)
	return count, nil
}

// SignOutSession deletes one specific session of the caller. Sessions that
// do not exist or belong to another user return ErrNotFound (ownership is
// never revealed); the caller's own current session returns
// ErrCurrentSession, since plain sign-out must be used for it.
func (m *Manager) SignOutSession(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID, currentToken string) error {
	sess, err := m.store.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}

	if sess.UserID != userID {
		return ErrNotFound
	}
	if sess.IsCurrent(currentToken) {
		return ErrCurrentSession
	}

	if err := m.store.Delete(ctx, sessionID); err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// List returns the user's unexpired sessions as display-ready rows, each
// annotated with whether it is the caller's current session. The device
// and browser names are best-effort User-Agent heuristics.
func (m *Manager) List(ctx context.Context, userID uuid.UUID, currentToken string) ([]SessionInfo, error) {
	sessions, err := m.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	infos := make([]SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		device, browser := useragent.Classify(sess.UserAgent)
		infos = append(infos, SessionInfo{
			ID:          sess.ID,
			DeviceName:  device,
			BrowserName: browser,
			IPAddress:   sess.IP,
			IsCurrent:   sess.IsCurrent(currentToken),
			LastActive:  sess.LastActiveAt,
			CreatedAt:   sess.CreatedAt,
		})
	}
	return infos, nil
}

// CleanupExpired removes all expired sessions, returning the count. It is
// a backstop to any store-native expiry mechanism and safe to run
// concurrently with itself.
func (m *Manager) CleanupExpired(ctx context.Context) (int64, error) {
	return m.store.DeleteExpired(ctx)
}

// StartCleanup runs the expired-session sweep immediately and then every
// cleanup interval until ctx is canceled. It blocks; run it in its own
// goroutine. Sweep failures are logged and the loop continues.
func (m *Manager) StartCleanup(ctx context.Context) {
	m.runCleanup(ctx)

	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.runCleanup(ctx)
		}
	}
}

func (m *Manager) runCleanup(ctx context.Context) {
	count, err := m.CleanupExpired(ctx)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			m.log.Error("expired session cleanup failed",
				logger.Component("session"),
				logger.Error(err),
			)
		}
		return
	}

	if count > 0 {
		m.log.Info("expired sessions removed",
			logger.Component("session"),
			logger.Event("cleanup_run"),
			logger.Count("deleted", int(count)),
		)
	}
}
