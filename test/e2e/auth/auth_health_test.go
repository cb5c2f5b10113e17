package auth_test

import (
	"testing"

	"github.com/rydolabs/rydo-auth/pkg/authapi"
	"github.com/stretchr/testify/require"
)

func TestLivez(t *testing.T) {
	baseURL, cleanup := setupAuthContainer(t)
	defer cleanup()

	client := authapi.NewClient(baseURL)

	health, err := client.Livez(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", health.Status)
	require.NotEmpty(t, health.Version)
	require.NotEmpty(t, health.Uptime)
}
