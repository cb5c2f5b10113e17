package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/rydolabs/rydo-auth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func testPolicy() *jwtx.Policy {
	return &jwtx.Policy{
		Secret:           []byte("0123456789abcdef0123456789abcdef"),
		Issuer:           "rydo-auth",
		Audience:         "rydo-api",
		ValidateLifetime: true,
		Leeway:           30 * time.Second,
	}
}

func TestNewSignerHS256RejectsWeakSecret(t *testing.T) {
	t.Run("empty secret", func(t *testing.T) {
		_, err := jwtx.NewSignerHS256(&jwtx.Policy{})
		require.ErrorIs(t, err, jwtx.ErrWeakSecret)
	})

	t.Run("short secret", func(t *testing.T) {
		_, err := jwtx.NewSignerHS256(&jwtx.Policy{Secret: []byte("too-short")})
		require.ErrorIs(t, err, jwtx.ErrWeakSecret)
	})
}

func TestSignVerifyRoundTrip(t *testing.T) {
	policy := testPolicy()
	signer, err := jwtx.NewSignerHS256(policy)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(policy)

	claims := jwtx.NewAccessClaims(
		"user-123", "alice", "alice@example.com",
		time.Minute, policy.Issuer, policy.Audience, time.Now(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	// Compact JWS: header.payload.signature
	require.Len(t, strings.Split(token, "."), 3)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "alice@example.com", got.Email)
	require.Equal(t, claims.ID, got.ID)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	policy := testPolicy()
	signer, err := jwtx.NewSignerHS256(policy)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(policy)

	claims := jwtx.NewAccessClaims(
		"user-123", "alice", "alice@example.com",
		time.Minute, policy.Issuer, policy.Audience, time.Now(),
	)
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		other := testPolicy()
		other.Secret = []byte("ffffffffffffffffffffffffffffffff")
		_, err := jwtx.NewVerifierHS256(other).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := verifier.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestVerifyEnforcesPolicy(t *testing.T) {
	policy := testPolicy()
	signer, err := jwtx.NewSignerHS256(policy)
	require.NoError(t, err)

	t.Run("issuer mismatch", func(t *testing.T) {
		other := testPolicy()
		other.Issuer = "impostor"
		token, err := signer.Sign(jwtx.NewAccessClaims(
			"u", "n", "e", time.Minute, policy.Issuer, policy.Audience, time.Now(),
		))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierHS256(other).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("audience mismatch", func(t *testing.T) {
		other := testPolicy()
		other.Audience = "unrelated-api"
		token, err := signer.Sign(jwtx.NewAccessClaims(
			"u", "n", "e", time.Minute, policy.Issuer, policy.Audience, time.Now(),
		))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierHS256(other).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("expired token rejected when lifetime validated", func(t *testing.T) {
		strict := testPolicy()
		strict.Leeway = 0
		token, err := signer.Sign(jwtx.NewAccessClaims(
			"u", "n", "e", time.Minute, policy.Issuer, policy.Audience,
			time.Now().Add(-2*time.Minute), // exp = now - 1m
		))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierHS256(strict).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("expired token accepted when lifetime not validated", func(t *testing.T) {
		lax := testPolicy()
		lax.ValidateLifetime = false
		token, err := signer.Sign(jwtx.NewAccessClaims(
			"u", "n", "e", time.Minute, policy.Issuer, policy.Audience,
			time.Now().Add(-2*time.Minute),
		))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierHS256(lax).Verify(token)
		require.NoError(t, err)
	})
}
