package mongo

import "errors"

var (
	// ErrFailedToConnectToMongo is returned when all connection retry
	// attempts are exhausted.
	ErrFailedToConnectToMongo = errors.New("mongo: failed to connect")
	// ErrHealthcheckFailed is returned when the health check ping fails.
	ErrHealthcheckFailed = errors.New("mongo: healthcheck failed")
)
