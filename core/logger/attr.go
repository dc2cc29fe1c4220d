package logger

import (
	"log/slog"
	"time"
)

// Attribute helpers use the empty Attr pattern for nil safety, so calls like
// log.Warn("msg", logger.Error(err)) need no explicit nil checks.

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component identifies which subsystem emitted the log record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a lifecycle event ("session_created", "cleanup_run", ...).
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// UserID tags a record with the acting user's identity.
func UserID(id string) slog.Attr {
	return slog.String("user_id", id)
}

// ClientIP tags a record with the request's client IP.
func ClientIP(ip string) slog.Attr {
	return slog.String("client_ip", ip)
}

// Count creates a counter attribute with a custom key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
