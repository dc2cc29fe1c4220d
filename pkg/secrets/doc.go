// Package secrets provides password hashing and verification over bcrypt.
//
// The session manager treats credential verification as an opaque
// collaborator; this package is the stock implementation the HTTP layer
// plugs in. Verification failures collapse into a single error value so
// responses cannot enumerate accounts or distinguish a bad password from a
// corrupted hash.
package secrets
