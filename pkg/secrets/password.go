package secrets

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrPasswordTooLong is returned when the password exceeds bcrypt's
	// 72-byte input limit.
	ErrPasswordTooLong = errors.New("secrets: password exceeds 72 bytes")
	// ErrPasswordMismatch is returned when the password does not match
	// the stored hash.
	ErrPasswordMismatch = errors.New("secrets: password mismatch")
)

// bcryptCost balances hashing latency against brute-force resistance.
// 12 keeps a single verification around 250ms on current hardware.
const bcryptCost = 12

// HashPassword derives a bcrypt hash from the plaintext password.
// The returned string embeds the salt and cost and is safe to persist.
func HashPassword(password string) (string, error) {
	if len(password) > 72 {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword checks the plaintext password against a stored hash.
// Returns ErrPasswordMismatch on any verification failure so callers never
// learn whether the hash or the password was malformed.
func VerifyPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
