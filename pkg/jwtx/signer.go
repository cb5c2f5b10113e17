package jwtx

import (
	"github.com/golang-jwt/jwt/v5"
)

// Signer is our interface for anything that can sign JWTs.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// HS256Signer signs compact JWS tokens with a symmetric HMAC-SHA256 key
// taken from the shared Policy.
type HS256Signer struct {
	policy *Policy
}

// NewSignerHS256 creates an HS256 signer bound to the given policy.
// The policy must already carry a usable secret; a bad secret is a
// process-level configuration failure and is rejected here, at startup,
// rather than on the first login.
func NewSignerHS256(policy *Policy) (*HS256Signer, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &HS256Signer{policy: policy}, nil
}

func (s *HS256Signer) Alg() string { return "HS256" }

// Sign serializes the claims into a header.payload.signature compact JWS.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.policy.Secret)
}
