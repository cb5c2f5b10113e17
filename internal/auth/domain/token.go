package domain

import "time"

// AuthResult is what a successful login or refresh returns: the signed
// access token, the opaque refresh token, and the access token's expiry.
// Transient, never persisted.
type AuthResult struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// RefreshToken models the stored refresh token record. Only the SHA-256
// fingerprint of the opaque token is kept at rest; the raw value exists
// exactly once, in the response that delivered it.
type RefreshToken struct {
	ID     string
	JWTID  string // jti of the access token issued alongside
	UserID string

	// TokenHash is the deterministic fingerprint (base64url SHA-256) of
	// the opaque token string, and the lookup key for redemption.
	TokenHash string

	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
