package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"
)

// header is the fixed JOSE header for every token this service produces.
// Only HMAC-SHA256 is supported, which keeps verification free of
// algorithm-confusion pitfalls.
type header struct {
	Algorithm string `json:"alg"`
	Type      string `json:"typ"`
}

// Service generates and parses HMAC-SHA256 signed JWTs.
type Service struct {
	signingKey []byte
}

// New creates a JWT service with the given signing key.
// The key should come from a cryptographically secure source.
func New(signingKey []byte) (*Service, error) {
	if len(signingKey) == 0 {
		return nil, ErrEmptySigningKey
	}
	return &Service{signingKey: signingKey}, nil
}

// NewFromString creates a JWT service from a string signing key.
func NewFromString(signingKey string) (*Service, error) {
	return New([]byte(signingKey))
}

// Generate creates a signed token from the given claims. Claims may be any
// JSON-serializable value; embed StandardClaims to get temporal validation
// on parse.
func (s *Service) Generate(claims any) (string, error) {
	headerJSON, err := json.Marshal(header{Algorithm: "HS256", Type: "JWT"})
	if err != nil {
		return "", err
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", ErrInvalidClaims
	}

	signingInput := encodeSegment(headerJSON) + "." + encodeSegment(claimsJSON)
	signature := s.sign(signingInput)

	return signingInput + "." + signature, nil
}

// Parse verifies the token signature and temporal claims, then unmarshals
// the payload into claims. The signature is checked before any claim data
// is trusted; comparison is constant-time.
func (s *Service) Parse(token string, claims any) error {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return ErrInvalidToken
	}

	signingInput := parts[0] + "." + parts[1]
	expected := s.sign(signingInput)
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return ErrInvalidSignature
	}

	headerJSON, err := decodeSegment(parts[0])
	if err != nil {
		return ErrInvalidToken
	}
	var h header
	if err := json.Unmarshal(headerJSON, &h); err != nil {
		return ErrInvalidToken
	}
	if h.Algorithm != "HS256" {
		return ErrUnexpectedSigningMethod
	}

	claimsJSON, err := decodeSegment(parts[1])
	if err != nil {
		return ErrInvalidToken
	}

	var std StandardClaims
	if err := json.Unmarshal(claimsJSON, &std); err != nil {
		return ErrInvalidToken
	}
	if err := std.validateTemporal(time.Now()); err != nil {
		return err
	}

	if err := json.Unmarshal(claimsJSON, claims); err != nil {
		return ErrInvalidClaims
	}

	return nil
}

func (s *Service) sign(signingInput string) string {
	mac := hmac.New(sha256.New, s.signingKey)
	mac.Write([]byte(signingInput))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func encodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeSegment(segment string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(segment)
}
