package service

import (
	"context"
	"errors"
	"time"

	"github.com/rydolabs/rydo-auth/internal/auth/domain"
	"github.com/rydolabs/rydo-auth/internal/auth/store"
	"github.com/rydolabs/rydo-auth/pkg/cryptox"
	"github.com/rydolabs/rydo-auth/pkg/idx"
	"github.com/rydolabs/rydo-auth/pkg/jwtx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
)

// TokenService issues access tokens and manages the refresh token
// lifecycle. Access tokens are stateless HS256 JWTs; refresh tokens are
// opaque random values stored by fingerprint only.
type TokenService struct {
	Signer     jwtx.Signer
	Store      store.Store
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Issue signs a new access token for the user. It performs no I/O; the
// result carries the jti so callers can bind a refresh record to it.
func (s *TokenService) Issue(user domain.User) (signed, jti string, expiresAt time.Time, err error) {
	now := time.Now()

	claims := jwtx.NewAccessClaims(user.ID, user.Username, user.Email, s.AccessTTL, s.Issuer, s.Audience, now)
	signed, err = s.Signer.Sign(claims)
	if err != nil {
		return "", "", time.Time{}, err
	}

	return signed, claims.ID, claims.ExpiresAt.Time, nil
}

// CreateRefresh mints a new opaque refresh token bound to the given
// access token's jti and persists its fingerprint. The raw value is
// returned exactly once; it is never stored.
func (s *TokenService) CreateRefresh(ctx context.Context, jti, userID string) (string, error) {
	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	rt := domain.RefreshToken{
		ID:        idx.New().String(),
		JWTID:     jti,
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(opaque),
		ExpiresAt: now.Add(s.RefreshTTL),
		Revoked:   false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Store.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
		return "", err
	}

	return opaque, nil
}

// IssueTokens signs an access token and persists a matching refresh
// token. The refresh write is durable before this returns, so a caller
// never hands out a refresh token the store does not know about.
func (s *TokenService) IssueTokens(ctx context.Context, user domain.User) (*domain.AuthResult, error) {
	signed, jti, expiresAt, err := s.Issue(user)
	if err != nil {
		return nil, err
	}

	opaque, err := s.CreateRefresh(ctx, jti, user.ID)
	if err != nil {
		return nil, err
	}

	return &domain.AuthResult{
		AccessToken:  signed,
		RefreshToken: opaque,
		ExpiresAt:    expiresAt,
	}, nil
}

// Refresh redeems an opaque refresh token for a new token bundle.
//
// The presented token is rotated: the old record is revoked and a new
// one created inside a single transaction, so a token can only ever be
// redeemed once even under concurrent redemption attempts.
func (s *TokenService) Refresh(ctx context.Context, refreshOpaque string) (*domain.AuthResult, error) {
	now := time.Now()
	fp := cryptox.FingerprintToken(refreshOpaque)

	var result *domain.AuthResult

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		rt, err := tx.RefreshTokens().GetRefreshTokenByHash(ctx, fp)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}

		if rt.Revoked || now.After(rt.ExpiresAt) {
			return ErrInvalidRefresh
		}

		user, err := tx.Users().GetUserByID(ctx, rt.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}

		signed, jti, expiresAt, err := s.Issue(user)
		if err != nil {
			return err
		}

		newOpaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return err
		}

		nowUTC := now.UTC()
		newRT := domain.RefreshToken{
			ID:        idx.New().String(),
			JWTID:     jti,
			UserID:    user.ID,
			TokenHash: cryptox.FingerprintToken(newOpaque),
			ExpiresAt: nowUTC.Add(s.RefreshTTL),
			Revoked:   false,
			CreatedAt: nowUTC,
			UpdatedAt: nowUTC,
		}

		if err := tx.RefreshTokens().RevokeRefreshToken(ctx, fp); err != nil {
			return err
		}
		if err := tx.RefreshTokens().CreateRefreshToken(ctx, newRT); err != nil {
			return err
		}

		result = &domain.AuthResult{
			AccessToken:  signed,
			RefreshToken: newOpaque,
			ExpiresAt:    expiresAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Revoke invalidates a refresh token so it can never be redeemed again.
// Revoking an unknown or already-revoked token reports ErrInvalidRefresh;
// callers decide whether that distinction reaches the wire.
func (s *TokenService) Revoke(ctx context.Context, refreshOpaque string) error {
	fp := cryptox.FingerprintToken(refreshOpaque)

	err := s.Store.RefreshTokens().RevokeRefreshToken(ctx, fp)
	if errors.Is(err, store.ErrNotFound) {
		return ErrInvalidRefresh
	}
	return err
}
