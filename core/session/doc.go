// Package session tracks long-lived multi-device sessions and orchestrates
// their lifecycle.
//
// Each successful sign-in creates one Session: an opaque high-entropy
// refresh credential bound to the user, the originating IP and User-Agent,
// and an absolute expiry. A session moves through a simple state machine,
// NONE → ACTIVE → {EXPIRED | REVOKED}, with both terminal transitions
// implemented as idempotent keyed deletes so refresh and sign-out race
// safely.
//
// The Manager is the lifecycle controller:
//
//	mgr := session.NewManager(store,
//		session.WithRefreshTTL(14*24*time.Hour),
//		session.WithNotifier(notifier),
//	)
//
//	result, err := mgr.SignIn(ctx, session.SignInParams{
//		UserID:    userID, // identity verified upstream
//		IP:        clientIP,
//		UserAgent: r.Header.Get("User-Agent"),
//	})
//
// Sign-in classifies the attempt as a "new device" when no unexpired
// session shares the device fingerprint, and emits a best-effort
// notification in the background. Refresh resolves the credential without
// rotating it; expired sessions are deleted on detection. The sweep
// started by StartCleanup backstops the store's own TTL mechanism.
//
// Lookup failures use a single generic ErrNotFound so responses never
// reveal whether the identifier or the credential was wrong.
package session
