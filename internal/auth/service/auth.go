package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/rydolabs/rydo-auth/internal/auth/domain"
	"github.com/rydolabs/rydo-auth/internal/auth/store"
	"github.com/rydolabs/rydo-auth/pkg/cryptox"
	"github.com/rydolabs/rydo-auth/pkg/idx"
	"github.com/rydolabs/rydo-auth/pkg/slogx"
)

var (
	ErrValidation = errors.New("invalid_request")
	ErrConflict   = errors.New("already_exists")
	ErrCreation   = errors.New("creation_failed")
)

// MinPasswordLength is the minimum accepted password length for new
// accounts. Existing hashes are never re-checked against it.
const MinPasswordLength = 8

// AuthService handles account registration and credential verification.
// Token issuance is delegated to TokenService so login failures never
// touch the signer.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

type RegisterParams struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
	Password  string
}

// NormalizeEmail is the single place email normalization happens. Every
// lookup and every stored value goes through it.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (p *RegisterParams) validate() error {
	p.Email = NormalizeEmail(p.Email)
	p.Username = strings.TrimSpace(p.Username)
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)

	if p.Email == "" || p.Username == "" || p.Password == "" {
		return ErrValidation
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		return ErrValidation
	}
	if len(p.Password) < MinPasswordLength {
		return ErrValidation
	}
	return nil
}

// Register creates a new account. It issues no tokens; the caller logs
// in separately. Duplicate emails report ErrConflict.
func (s *AuthService) Register(ctx context.Context, params RegisterParams) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if err := params.validate(); err != nil {
		return domain.User{}, err
	}

	// Cheap pre-check; the unique index still backstops races.
	if _, err := s.Store.Users().GetUserByEmail(ctx, params.Email); err == nil {
		return domain.User{}, ErrConflict
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(params.Password)
	if err != nil {
		return domain.User{}, ErrCreation
	}

	stamp, err := cryptox.GenerateToken(cryptox.TokenSize128)
	if err != nil {
		return domain.User{}, ErrCreation
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:            idx.New().String(),
		Email:         params.Email,
		Username:      params.Username,
		FirstName:     params.FirstName,
		LastName:      params.LastName,
		PasswordHash:  hash,
		SecurityStamp: stamp,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrConflict
		}
		l.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, ErrCreation
	}

	l.Info("user registered", slog.String("user_id", user.ID))
	return user, nil
}

// Login verifies email+password and returns a fresh token bundle.
//
// Unknown email and wrong password both report ErrInvalidCredentials
// and take the same code path shape, so a caller cannot probe which
// emails are registered. No writes happen on a failed attempt.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	l := slogx.FromContext(ctx)

	// Missing input is a malformed request, not a failed credential
	// check; only the store lookup and password verify below must stay
	// indistinguishable.
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrValidation
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	result, err := s.Tokens.IssueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	l.Info("user logged in", slog.String("user_id", user.ID))
	return result, nil
}
