package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rydolabs/rydo-auth/internal/auth/service"
	"github.com/rydolabs/rydo-auth/pkg/authapi"
	"github.com/rydolabs/rydo-auth/pkg/httpx"
	"github.com/rydolabs/rydo-auth/pkg/slogx"
)

// LoginHandler serves POST /v1/auth/login. All credential failures share
// a single response shape so callers cannot probe which emails exist.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Log in with email and password
//	@Description	Verifies credentials and returns a signed access token plus an opaque refresh token.
//	@Description	Unknown email and wrong password return the same 401 body.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authapi.LoginRequest	true	"Credentials"
//	@Success		200		{object}	authapi.AuthResponse
//	@Failure		400		{object}	authapi.ErrorResponse	"invalid_request"
//	@Failure		401		{object}	authapi.ErrorResponse	"invalid_credentials"
//	@Failure		429		"rate limited"
//	@Header			200		{string}	Cache-Control	"no-store"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authapi.ErrInvalidRequest.WriteError(w)
		return
	}

	result, err := h.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			authapi.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			authapi.ErrUnauthorized.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			authapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authapi.AuthResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    result.ExpiresAt,
	})
}
