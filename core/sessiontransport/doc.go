// Package sessiontransport moves session credentials between the core and
// HTTP clients.
//
// Two artifacts travel separately. The long-lived refresh credential rides
// in an HttpOnly cookie whose max-age matches the server-side session
// expiry; the short-lived access token is a signed JWT asserting the user
// identity, handed to the client in the response body and verified by
// request-authentication middleware downstream.
//
//	cookie := sessiontransport.NewCookieFromConfig(cfg, mgr.RefreshTTL())
//	tokens, err := sessiontransport.NewJWTFromConfig(cfg,
//		sessiontransport.WithRevoker(redisRevoker),
//	)
//
//	// sign-in handler
//	result, _ := mgr.SignIn(ctx, params)
//	cookie.Set(w, result.Session.Token)
//	access, _ := tokens.Issue(result.Session.UserID)
//
//	// refresh handler
//	token, err := cookie.Read(r) // ErrNoToken -> 401
//	sess, err := mgr.Refresh(ctx, token)
//	access, _ := tokens.Issue(sess.UserID)
//
// Revocation is optional: with the stock NoOpRevoker, sign-out deletes the
// session and clears the cookie while issued access tokens age out within
// their TTL. Deployments that need immediate access-token invalidation
// plug in the Redis-backed revoker.
package sessiontransport
