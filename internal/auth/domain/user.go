package domain

import "time"

// User is a registered account. Email is unique within the store and is
// always kept lowercase; the service normalizes it before any lookup.
type User struct {
	ID           string
	Email        string
	Username     string
	FirstName    string
	LastName     string
	PasswordHash string // argon2id, PHC encoded

	// SecurityStamp is a server-side random value rotated whenever
	// credentials change, so outstanding credential-derived artifacts can
	// be invalidated in bulk.
	SecurityStamp string

	CreatedAt time.Time
	UpdatedAt time.Time
}
