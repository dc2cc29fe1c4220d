package useragent

import "strings"

const unknown = "Unknown"

// Classify returns a coarse (device, browser) pair derived from simple
// substring tests on the User-Agent string. It exists purely to label
// entries in a "your active sessions" list and must never influence a
// security decision: User-Agent headers are client-controlled.
func Classify(userAgent string) (device, browser string) {
	return DeviceName(userAgent), BrowserName(userAgent)
}

// DeviceName classifies the User-Agent as "Mobile", "Tablet" or "Desktop".
// Returns "Unknown" for an empty string.
func DeviceName(userAgent string) string {
	if userAgent == "" {
		return unknown
	}

	switch {
	case strings.Contains(userAgent, "iPad"), strings.Contains(userAgent, "Tablet"):
		return "Tablet"
	case strings.Contains(userAgent, "Mobile"), strings.Contains(userAgent, "iPhone"),
		strings.Contains(userAgent, "Android"):
		return "Mobile"
	default:
		return "Desktop"
	}
}

// BrowserName picks a browser family name out of the User-Agent string.
// The order of checks matters: Chromium-family browsers embed "Chrome"
// (and "Safari") in their User-Agent, so the more specific markers are
// tested first. Returns "Unknown" when nothing matches.
func BrowserName(userAgent string) string {
	if userAgent == "" {
		return unknown
	}

	switch {
	case strings.Contains(userAgent, "Edg"):
		return "Edge"
	case strings.Contains(userAgent, "OPR"), strings.Contains(userAgent, "Opera"):
		return "Opera"
	case strings.Contains(userAgent, "Firefox"):
		return "Firefox"
	case strings.Contains(userAgent, "Chrome"):
		return "Chrome"
	case strings.Contains(userAgent, "Safari"):
		return "Safari"
	default:
		return unknown
	}
}
