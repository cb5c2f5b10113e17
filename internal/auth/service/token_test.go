package service

import (
	"context"
	"testing"
	"time"

	"github.com/rydolabs/rydo-auth/internal/auth/store"
	"github.com/rydolabs/rydo-auth/pkg/cryptox"
	"github.com/rydolabs/rydo-auth/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestIssueProducesUniqueJTIs(t *testing.T) {
	ctx := context.Background()
	auth, tokens, _ := newTestServices(t)

	user, err := auth.Register(ctx, registerParams())
	require.NoError(t, err)

	_, jti1, _, err := tokens.Issue(user)
	require.NoError(t, err)
	_, jti2, _, err := tokens.Issue(user)
	require.NoError(t, err)

	require.NotEmpty(t, jti1)
	require.NotEqual(t, jti1, jti2)
}

func TestRefreshRotatesToken(t *testing.T) {
	ctx := context.Background()
	auth, tokens, _ := newTestServices(t)

	_, err := auth.Register(ctx, registerParams())
	require.NoError(t, err)

	first, err := auth.Login(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)

	second, err := tokens.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, second.AccessToken)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// The redeemed token is revoked; a second redemption must fail.
	_, err = tokens.Refresh(ctx, first.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)

	// The rotated token still works.
	third, err := tokens.Refresh(ctx, second.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, third.AccessToken)
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	ctx := context.Background()
	_, tokens, _ := newTestServices(t)

	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)

	_, err = tokens.Refresh(ctx, opaque)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	auth, tokens, _ := newTestServices(t)

	_, err := auth.Register(ctx, registerParams())
	require.NoError(t, err)

	tokens.RefreshTTL = -time.Hour // already expired on creation
	result, err := auth.Login(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)

	_, err = tokens.Refresh(ctx, result.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestRevoke(t *testing.T) {
	ctx := context.Background()
	auth, tokens, _ := newTestServices(t)

	_, err := auth.Register(ctx, registerParams())
	require.NoError(t, err)

	result, err := auth.Login(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)

	require.NoError(t, tokens.Revoke(ctx, result.RefreshToken))

	_, err = tokens.Refresh(ctx, result.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)

	t.Run("unknown token reports invalid refresh", func(t *testing.T) {
		opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
		require.NoError(t, err)
		require.ErrorIs(t, tokens.Revoke(ctx, opaque), ErrInvalidRefresh)
	})
}

func TestRefreshStoresOnlyFingerprints(t *testing.T) {
	ctx := context.Background()
	auth, _, st := newTestServices(t)

	_, err := auth.Register(ctx, registerParams())
	require.NoError(t, err)

	result, err := auth.Login(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)

	// The raw opaque value is not a lookup key; only its fingerprint is.
	_, err = st.RefreshTokens().GetRefreshTokenByHash(ctx, result.RefreshToken)
	require.ErrorIs(t, err, store.ErrNotFound)

	rt, err := st.RefreshTokens().GetRefreshTokenByHash(ctx, cryptox.FingerprintToken(result.RefreshToken))
	require.NoError(t, err)
	require.False(t, rt.Revoked)

	// The refresh record is bound to the access token it was issued with.
	claims, err := jwtx.NewVerifierHS256(testPolicy()).Verify(result.AccessToken)
	require.NoError(t, err)
	require.Equal(t, claims.ID, rt.JWTID)
}

func TestHousekeepingDeletesExpired(t *testing.T) {
	ctx := context.Background()
	auth, tokens, st := newTestServices(t)

	_, err := auth.Register(ctx, registerParams())
	require.NoError(t, err)

	tokens.RefreshTTL = -time.Hour
	expired, err := auth.Login(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)

	tokens.RefreshTTL = time.Hour
	live, err := auth.Login(ctx, "alice@example.com", "correct horse battery")
	require.NoError(t, err)

	require.NoError(t, st.RefreshTokens().DeleteExpiredRefreshTokens(ctx))

	_, err = st.RefreshTokens().GetRefreshTokenByHash(ctx, cryptox.FingerprintToken(expired.RefreshToken))
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.RefreshTokens().GetRefreshTokenByHash(ctx, cryptox.FingerprintToken(live.RefreshToken))
	require.NoError(t, err)
}
