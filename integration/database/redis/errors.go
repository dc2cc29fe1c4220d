package redis

import "errors"

var (
	// ErrFailedToParseRedisConnString is returned when the connection URL
	// is malformed.
	ErrFailedToParseRedisConnString = errors.New("redis: failed to parse connection string")
	// ErrRedisNotReady is returned when all connection retry attempts are
	// exhausted.
	ErrRedisNotReady = errors.New("redis: connection not ready")
	// ErrHealthcheckFailed is returned when the health check ping fails.
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
