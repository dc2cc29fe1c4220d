// Package logger provides structured logging utilities built on Go's
// standard slog package: a small factory for environment-specific logger
// construction and typed attribute helpers for the fields this module logs
// most (errors, components, users, client IPs).
//
//	log := logger.New(logger.WithProduction("authcore"))
//	log.Info("session cleanup finished",
//		logger.Component("session"),
//		logger.Count("deleted", n),
//	)
//
// Attribute helpers follow the empty-Attr pattern: logger.Error(nil)
// produces an attribute slog silently drops, so call sites stay free of
// nil checks.
package logger
