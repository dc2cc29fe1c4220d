// Package redis provides Redis client initialization, health checking,
// and the revocation list for access-token JWT IDs.
//
// The package wraps the go-redis client with URL validation, retry logic,
// and a ping verification before the client is handed out, so transient
// network issues at startup do not surface as request failures later.
//
// Basic usage:
//
//	import (
//		"context"
//		"log"
//
//		"github.com/apertura/authcore/core/config"
//		"github.com/apertura/authcore/integration/database/redis"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		var cfg redis.Config
//		config.MustLoad(&cfg)
//
//		client, err := redis.Connect(ctx, cfg)
//		if err != nil {
//			log.Fatal("Failed to connect to Redis:", err)
//		}
//		defer client.Close()
//
//		revoker := redis.NewRevoker(client)
//		_ = revoker
//	}
//
// # Revocation List
//
// Revoker implements sessiontransport.Revoker. Revoked JWT IDs are
// stored under "revoked_jti:<jti>" with a TTL equal to the remaining
// token lifetime, so entries disappear exactly when the tokens they
// block would have expired anyway.
//
// # Configuration
//
// All configuration is handled through environment variables via the
// Config struct:
//
//	REDIS_URL              (required, default: redis://localhost:6379/0)
//	REDIS_RETRY_ATTEMPTS   (default: 3)
//	REDIS_RETRY_INTERVAL   (default: 5s)
//	REDIS_CONNECT_TIMEOUT  (default: 30s)
//
// # Health Checking
//
// Healthcheck returns a function for Kubernetes probes or HTTP endpoints:
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// report unhealthy
//	}
package redis
