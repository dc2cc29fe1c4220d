package jwt

import "time"

// StandardClaims holds the RFC 7519 registered claims this service
// understands. Embed it in a custom claims struct to get temporal
// validation for free:
//
//	type AccessClaims struct {
//		jwt.StandardClaims
//		UserID string `json:"user_id"`
//	}
type StandardClaims struct {
	// ID is the JWT ID (jti), used as the revocation handle.
	ID        string `json:"jti,omitempty"`
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// validateTemporal checks exp and nbf against the given instant.
// Zero values mean the claim is absent and is not enforced.
func (c StandardClaims) validateTemporal(now time.Time) error {
	if c.ExpiresAt != 0 && now.Unix() >= c.ExpiresAt {
		return ErrExpiredToken
	}
	if c.NotBefore != 0 && now.Unix() < c.NotBefore {
		return ErrTokenNotYetValid
	}
	return nil
}
