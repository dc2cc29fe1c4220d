// Package jwt provides an RFC 7519 compliant JSON Web Token implementation
// using HMAC-SHA256.
//
// It covers generation, validation, and parsing of JWTs with standard claims
// and custom payload structures. Signature verification is constant-time and
// only HS256 is accepted, so algorithm-substitution attacks are rejected at
// the header check.
//
// Basic usage:
//
//	service, err := jwt.NewFromString("your-secret-key")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	type AccessClaims struct {
//		jwt.StandardClaims
//		UserID string `json:"user_id"`
//	}
//
//	token, err := service.Generate(AccessClaims{
//		StandardClaims: jwt.StandardClaims{
//			Subject:   userID,
//			ExpiresAt: time.Now().Add(30 * time.Minute).Unix(),
//			IssuedAt:  time.Now().Unix(),
//		},
//		UserID: userID,
//	})
//
//	var claims AccessClaims
//	if err := service.Parse(token, &claims); err != nil {
//		switch {
//		case errors.Is(err, jwt.ErrExpiredToken):
//			// prompt re-authentication
//		case errors.Is(err, jwt.ErrInvalidSignature):
//			// reject outright
//		}
//	}
package jwt
