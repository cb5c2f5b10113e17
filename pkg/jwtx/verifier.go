package jwtx

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrAudience    = errors.New("jwtx: audience mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// HS256Verifier verifies HS256 tokens against the same Policy the signer
// was built from. Issuer, audience and lifetime rules all come from the
// policy so the two sides cannot drift apart.
type HS256Verifier struct {
	policy *Policy
}

func NewVerifierHS256(policy *Policy) *HS256Verifier {
	return &HS256Verifier{policy: policy}
}

// Verify checks the signature and the policy's issuer/audience/lifetime
// rules, returning the embedded claims on success.
func (v *HS256Verifier) Verify(token string) (Claims, error) {
	// Claims validation is done by hand below so the policy's
	// ValidateLifetime flag and leeway are honored instead of the
	// library defaults.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithoutClaimsValidation(),
	)

	var claims Claims
	parsed, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		// Pin the method family to reject alg-substitution tokens.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAlgMismatch
		}
		return v.policy.Secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, ErrAlgMismatch):
			return Claims{}, ErrAlgMismatch
		default:
			return Claims{}, ErrMalformed
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(v.policy.Issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateAudience(v.policy.Audience); err != nil {
		return Claims{}, err
	}
	if v.policy.ValidateLifetime {
		if err := claims.ValidateExpiryWithLeeway(v.policy.Leeway); err != nil {
			return Claims{}, err
		}
	}

	return claims, nil
}
