package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rydolabs/rydo-auth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestAuthnMiddleware(t *testing.T) {
	policy := &jwtx.Policy{
		Secret:           bytes.Repeat([]byte("k"), jwtx.MinSecretBytes),
		Issuer:           "test-issuer",
		Audience:         "test-audience",
		ValidateLifetime: true,
	}

	signer, err := jwtx.NewSignerHS256(policy)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(policy)

	// Echo the authenticated subject so assertions can see the context.
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(UserIDFromContext(r.Context())))
	}), AuthnMiddleware(verifier))

	sign := func(t *testing.T, p *jwtx.Policy, ttl time.Duration) string {
		t.Helper()
		s, err := jwtx.NewSignerHS256(p)
		require.NoError(t, err)
		token, err := s.Sign(jwtx.NewAccessClaims(
			"user-123", "alice", "alice@example.com",
			ttl, p.Issuer, p.Audience, time.Now(),
		))
		require.NoError(t, err)
		return token
	}

	do := func(t *testing.T, authz string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if authz != "" {
			req.Header.Set("Authorization", authz)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid token reaches handler with subject in context", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewAccessClaims(
			"user-123", "alice", "alice@example.com",
			time.Minute, policy.Issuer, policy.Audience, time.Now(),
		))
		require.NoError(t, err)

		rec := do(t, "Bearer "+token)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-123", rec.Body.String())
	})

	t.Run("missing header rejected", func(t *testing.T) {
		rec := do(t, "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("non-bearer scheme rejected", func(t *testing.T) {
		rec := do(t, "Basic dXNlcjpwYXNz")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		rec := do(t, "Bearer not.a.jwt")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with a different secret rejected", func(t *testing.T) {
		other := &jwtx.Policy{
			Secret:   bytes.Repeat([]byte("x"), jwtx.MinSecretBytes),
			Issuer:   policy.Issuer,
			Audience: policy.Audience,
		}
		rec := do(t, "Bearer "+sign(t, other, time.Minute))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token for a different audience rejected", func(t *testing.T) {
		other := &jwtx.Policy{
			Secret:   policy.Secret,
			Issuer:   policy.Issuer,
			Audience: "someone-else",
		}
		rec := do(t, "Bearer "+sign(t, other, time.Minute))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token rejected", func(t *testing.T) {
		rec := do(t, "Bearer "+sign(t, policy, -time.Minute))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
