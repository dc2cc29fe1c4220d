// Package authz computes, caches, and constrains administrative privilege.
//
// A user's privilege is defined entirely by their AdminRole record: the
// role tier (super_admin, admin, moderator), granular permission flags, an
// active kill-switch, an optional expiry, and an optional IP allowlist.
// Absence of a record means an ordinary user. The Engine turns that record
// plus a client IP into a Status, consulting a short-TTL in-memory Cache
// first:
//
//	cache := authz.NewCache(5 * time.Minute)
//	engine := authz.NewEngine(roleStore, authz.WithCache(cache))
//
//	status, err := engine.Status(ctx, userID, clientIP)
//	if err != nil {
//		// store failure: surface as a server error, not as "not admin"
//	}
//	if status.IsAdmin {
//		perms := status.Role.EffectivePermissions()
//		...
//	}
//
// Checks run in a fixed order and the first failure wins: inactive roles
// are rejected before expiry is considered, and expiry before the IP
// allowlist. The resulting reason string is for logs and UI hints only.
//
// The cache is transparent: any result served from it is exactly what a
// fresh computation would return, enforced by lazy TTL eviction on read
// and by Grant/Revoke invalidating the user's entries before returning.
package authz
