package jwtx

import (
	"errors"
	"time"
)

// MinSecretBytes is the smallest HMAC secret we accept. Anything shorter
// than the HS256 block input is trivially brute-forceable.
const MinSecretBytes = 32

var ErrWeakSecret = errors.New("jwtx: signing secret missing or too short")

// Policy is the single source of truth for everything both sides of a
// token exchange must agree on: the HMAC secret, the issuer and audience
// strings, and how lifetimes are checked. It is constructed once at
// startup and shared by reference between the signer that mints tokens
// and the verifier that later accepts them. Immutable after construction;
// safe for unsynchronized concurrent reads.
type Policy struct {
	// Secret is the raw HMAC-SHA256 key.
	Secret []byte

	// Issuer is stamped into minted tokens (iss) and enforced on verify.
	Issuer string

	// Audience is stamped into minted tokens (aud) and enforced on verify.
	Audience string

	// ValidateLifetime controls whether exp/nbf are enforced on verify.
	ValidateLifetime bool

	// Leeway allows small clock skew when validating exp/nbf.
	// Because time sync is never perfect.
	Leeway time.Duration
}

// Validate reports whether the policy is usable for signing. A missing or
// short secret is a fatal configuration error, not a per-request one.
func (p *Policy) Validate() error {
	if len(p.Secret) < MinSecretBytes {
		return ErrWeakSecret
	}
	return nil
}
