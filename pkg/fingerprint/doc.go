// Package fingerprint derives stable device fingerprints from client request
// attributes for heuristic "same device" detection.
//
// The fingerprint is computed from the User-Agent header and client IP
// address, so a user signing in repeatedly from the same browser and network
// produces the same value. It is used to decide whether a sign-in looks like
// a new device (and deserves a notification), never to authenticate anyone.
//
// Basic usage:
//
//	fp := fingerprint.Device(r.Header.Get("User-Agent"), clientIP)
//
// The function is pure and deterministic for all inputs, including empty
// strings.
package fingerprint
