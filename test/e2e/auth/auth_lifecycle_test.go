package auth_test

import (
	"testing"

	"github.com/rydolabs/rydo-auth/pkg/authapi"
	"github.com/stretchr/testify/require"
)

// TestRegisterLoginRefreshRevoke walks the whole token lifecycle:
// 1. Register a user
// 2. Login with email+password
// 3. Refresh the token and verify rotation
// 4. Revoke and verify the token is dead
func TestRegisterLoginRefreshRevoke(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authapi.NewClient(baseURL)

	// Register
	regResp, err := client.Register(t.Context(), authapi.RegisterRequest{
		FirstName: "Alice",
		LastName:  "Nguyen",
		Email:     testEmail,
		Username:  testUsername,
		Password:  testPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "created", regResp.Status)
	require.NotEmpty(t, regResp.UserID)

	// Login
	loginResp, err := client.Login(t.Context(), authapi.LoginRequest{
		Email:    testEmail,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, loginResp.AccessToken)
	require.NotEmpty(t, loginResp.RefreshToken)
	require.Equal(t, "Bearer", loginResp.TokenType)

	// Refresh: tokens must rotate
	refreshResp, err := client.Refresh(t.Context(), loginResp.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, loginResp.AccessToken, refreshResp.AccessToken, "Access token should be rotated")
	require.NotEqual(t, loginResp.RefreshToken, refreshResp.RefreshToken, "Refresh token should be rotated")

	// The redeemed refresh token must not work a second time
	_, err = client.Refresh(t.Context(), loginResp.RefreshToken)
	requireAPIError(t, err, authapi.ErrorCodeInvalidGrant)

	// Revoke the rotated token, then it must not redeem either
	require.NoError(t, client.Revoke(t.Context(), refreshResp.RefreshToken))

	_, err = client.Refresh(t.Context(), refreshResp.RefreshToken)
	requireAPIError(t, err, authapi.ErrorCodeInvalidGrant)
}

// TestRegisterDuplicateEmail verifies the case-insensitive email
// uniqueness constraint surfaces as a 409.
func TestRegisterDuplicateEmail(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authapi.NewClient(baseURL)

	_, err := client.Register(t.Context(), authapi.RegisterRequest{
		Email:    testEmail,
		Username: testUsername,
		Password: testPassword,
	})
	require.NoError(t, err)

	_, err = client.Register(t.Context(), authapi.RegisterRequest{
		Email:    "ALICE@Example.COM",
		Username: "alice2",
		Password: testPassword,
	})
	requireAPIError(t, err, authapi.ErrorCodeAlreadyExists)
}

func requireAPIError(t *testing.T, err error, code string) {
	t.Helper()

	var apiErr *authapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, code, apiErr.Code)
}
