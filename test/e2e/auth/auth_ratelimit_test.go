package auth_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/rydolabs/rydo-auth/pkg/authapi"
	"github.com/stretchr/testify/require"
)

// TestLoginRateLimiting hammers the login endpoint with production rate
// limits in place and expects a 429 before too long.
func TestLoginRateLimiting(t *testing.T) {
	baseURL, cleanup := setupAuthContainerWithDefaultRateLimits(t)
	defer cleanup()

	client := authapi.NewClient(baseURL)

	limited := false
	for i := 0; i < 30; i++ {
		_, err := client.Login(t.Context(), authapi.LoginRequest{
			Email:    "nobody@example.com",
			Password: "wrong",
		})

		var apiErr *authapi.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
			limited = true
			break
		}
	}

	require.True(t, limited, "expected a 429 after repeated login attempts")
}
