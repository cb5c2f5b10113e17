// Package authapi holds the wire types and error vocabulary of the Rydo
// auth HTTP API, shared by the server handlers, the Go client and the
// end-to-end tests so the two sides cannot drift apart.
package authapi

import "time"

// RegisterRequest is the JSON body for POST /v1/auth/register.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// RegisterResponse acknowledges a successful registration. Registration
// never issues tokens; login is a separate step.
type RegisterResponse struct {
	Status string `json:"status"` // always "created"
	UserID string `json:"user_id"`
}

// LoginRequest is the JSON body for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest is the JSON body for POST /v1/auth/refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RevokeRequest is the JSON body for POST /v1/auth/revoke.
type RevokeRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// AuthResponse carries a freshly issued token bundle: the signed access
// token, the opaque refresh token, and the access token's expiry.
type AuthResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"` // always "Bearer"
	ExpiresAt    time.Time `json:"expires_at"`
}

// UserResponse is returned by GET /v1/auth/me for the authenticated user.
type UserResponse struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// HealthResponse is returned by the livez/readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports per-dependency readiness.
type HealthChecks struct {
	Database string `json:"database"`
	Signer   string `json:"signer"`
}
