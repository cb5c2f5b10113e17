package authapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned in the "error" field of ErrorResponse.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeAlreadyExists  = "already_exists"
	ErrorCodeCreationFailed = "creation_failed"
	ErrorCodeUnauthorized   = "invalid_credentials"
	ErrorCodeInvalidGrant   = "invalid_grant"
	ErrorCodeInvalidToken   = "invalid_token"
	ErrorCodeServerError    = "server_error"
)

// APIError is an error with an HTTP shape. It is used by the server to
// write responses and by the client to represent non-2xx replies.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is the machine-readable error code.
	Code string `json:"error"`

	// Description is a human-readable description of the error.
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            e.Code,
		ErrorDescription: e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when the body is malformed or a
	// required field is missing.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required fields",
	}

	// ErrAlreadyExists is returned when registering an email that is
	// already taken.
	ErrAlreadyExists = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeAlreadyExists,
		Description: "a user with this email already exists",
	}

	// ErrCreationFailed is returned when the user store rejected the new
	// record, e.g. for password policy reasons.
	ErrCreationFailed = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeCreationFailed,
		Description: "the user could not be created",
	}

	// ErrUnauthorized is returned for any failed login. Unknown email and
	// wrong password deliberately share this response so callers cannot
	// probe which accounts exist.
	ErrUnauthorized = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeUnauthorized,
		Description: "invalid email or password",
	}

	// ErrInvalidGrant is returned when a presented refresh token is
	// unknown, expired or revoked.
	ErrInvalidGrant = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidGrant,
		Description: "refresh token is invalid, expired or revoked",
	}

	// ErrInvalidToken is returned when a bearer access token is missing
	// or fails verification.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing or invalid",
	}

	// ErrServerError is the generic internal failure response; details
	// stay in the logs.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)
