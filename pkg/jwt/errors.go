package jwt

import "errors"

var (
	// ErrEmptySigningKey is returned when constructing a service without a key.
	ErrEmptySigningKey = errors.New("jwt: signing key is empty")
	// ErrInvalidToken is returned for structurally malformed tokens.
	ErrInvalidToken = errors.New("jwt: invalid token")
	// ErrInvalidSignature is returned when the signature does not verify.
	ErrInvalidSignature = errors.New("jwt: invalid signature")
	// ErrUnexpectedSigningMethod is returned when the token header declares
	// an algorithm other than HS256.
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
	// ErrExpiredToken is returned when the exp claim has passed.
	ErrExpiredToken = errors.New("jwt: token has expired")
	// ErrTokenNotYetValid is returned when the nbf claim is in the future.
	ErrTokenNotYetValid = errors.New("jwt: token not yet valid")
	// ErrInvalidClaims is returned when claims cannot be serialized or
	// deserialized.
	ErrInvalidClaims = errors.New("jwt: invalid claims")
)
