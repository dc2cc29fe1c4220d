// Package authcore implements authentication, session lifecycle, and
// authorization for the Apertura photo-sharing platform. It covers
// refresh-credential sessions with device fingerprinting, short-lived
// signed access tokens with a revocation list, and role-based admin
// authorization with per-role IP allowlists and a TTL decision cache.
//
// # Package Organization
//
// The module is organized into three layers:
//
//   - Core: the domain engines for sessions and authorization
//   - Utilities: standalone packages with no domain knowledge
//   - Integrations: MongoDB and Redis backed implementations
//
// # Core Packages
//
//	github.com/apertura/authcore/core/authz            - Admin roles, permissions, decision cache, and engine
//	github.com/apertura/authcore/core/config           - Type-safe environment variable loading
//	github.com/apertura/authcore/core/logger           - Structured logging helpers over log/slog
//	github.com/apertura/authcore/core/session          - Session records, lifecycle manager, and cleanup sweep
//	github.com/apertura/authcore/core/sessiontransport - Refresh cookie and access-token issuance/verification
//
// # Utility Packages
//
//	github.com/apertura/authcore/pkg/async       - Fire-and-forget task execution with awaitable futures
//	github.com/apertura/authcore/pkg/fingerprint - Device fingerprint derivation
//	github.com/apertura/authcore/pkg/ipmatch     - Exact and CIDR-based IP allowlist matching
//	github.com/apertura/authcore/pkg/jwt         - HMAC-SHA256 JWT creation and validation
//	github.com/apertura/authcore/pkg/secrets     - Password hashing and verification
//	github.com/apertura/authcore/pkg/useragent   - Coarse device and browser classification
//
// # Integration Packages
//
//	github.com/apertura/authcore/integration/database/mongo - MongoDB client plus session and role stores
//	github.com/apertura/authcore/integration/database/redis - Redis client plus the access-token revocation list
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/apertura/authcore/core/session
//	go doc -all github.com/apertura/authcore/core/authz
package authcore
