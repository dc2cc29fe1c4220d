package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

// unknownComponent substitutes missing inputs so that every request,
// however malformed, still yields a stable fingerprint.
const unknownComponent = "Unknown"

// Device derives a stable device fingerprint from the client's User-Agent
// string and IP address. The result is the hex-encoded SHA-256 digest of
// "userAgent-ipAddress"; empty components are replaced with "Unknown".
//
// The fingerprint is a heuristic "same device" signal only. Collisions are
// acceptable and it must never be used as a security boundary: two browsers
// with identical User-Agent strings behind the same NAT will collide.
func Device(userAgent, ipAddress string) string {
	if userAgent == "" {
		userAgent = unknownComponent
	}
	if ipAddress == "" {
		ipAddress = unknownComponent
	}

	hash := sha256.Sum256([]byte(userAgent + "-" + ipAddress))
	return hex.EncodeToString(hash[:])
}
