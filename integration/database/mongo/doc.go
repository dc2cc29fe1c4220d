// Package mongo provides MongoDB client initialization, health checking,
// and the document-backed stores for sessions and admin roles.
//
// The package wraps the official MongoDB Go driver with application-level
// retry logic optimized for cloud deployments, particularly MongoDB Atlas.
// Both New and NewWithDatabase implement retry to ride out Atlas cold
// starts (5-8 seconds) and brief network interruptions that could
// otherwise cause application startup failures.
//
// Basic usage:
//
//	import (
//		"context"
//		"log"
//
//		"github.com/apertura/authcore/core/config"
//		"github.com/apertura/authcore/integration/database/mongo"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		var cfg mongo.Config
//		config.MustLoad(&cfg)
//
//		db, err := mongo.NewWithDatabase(ctx, cfg, "authcore")
//		if err != nil {
//			log.Fatal("Failed to connect to MongoDB:", err)
//		}
//		defer db.Client().Disconnect(ctx)
//
//		sessions := mongo.NewSessionStore(db)
//		if err := sessions.EnsureIndexes(ctx); err != nil {
//			log.Fatal("Failed to create indexes:", err)
//		}
//
//		roles := mongo.NewRoleStore(db)
//		_ = roles
//	}
//
// # Stores
//
// SessionStore implements session.Store on the "sessions" collection.
// EnsureIndexes creates a unique index on the refresh token, a compound
// index on (user_id, fingerprint) for device lookups, and a TTL index on
// expires_at so MongoDB evicts expired documents on its own. The TTL
// eviction is a backstop; the session manager's periodic sweep remains
// the authoritative cleanup path and reports counts.
//
// RoleStore implements authz.Store on the "admin_roles" collection. The
// user ID is the document _id, which enforces the one-record-per-user
// constraint without a separate unique index.
//
// Domain errors are mapped at this boundary: a missing document becomes
// session.ErrNotFound or authz.ErrNotFound, and a duplicate token insert
// becomes session.ErrDuplicateToken.
//
// # Configuration
//
// Configuration is handled through environment variables via the Config
// struct. The defaults are optimized for MongoDB Atlas:
//
//	MONGODB_URL                 (required)
//	MONGODB_CONNECT_TIMEOUT     (default: 10s)
//	MONGODB_MAX_POOL_SIZE       (default: 100)
//	MONGODB_MIN_POOL_SIZE       (default: 1)
//	MONGODB_MAX_CONN_IDLE_TIME  (default: 300s)
//	MONGODB_RETRY_WRITES        (default: true)
//	MONGODB_RETRY_READS         (default: true)
//	MONGODB_RETRY_ATTEMPTS      (default: 3)
//	MONGODB_RETRY_INTERVAL      (default: 5s)
//
// # Health Checking
//
// Healthcheck returns a function for Kubernetes probes or HTTP endpoints:
//
//	check := mongo.Healthcheck(db.Client())
//	if err := check(ctx); err != nil {
//		// report unhealthy
//	}
package mongo
