package http

import (
	"encoding/json"
	"net/http"

	"github.com/rydolabs/rydo-auth/internal/auth/service"
	"github.com/rydolabs/rydo-auth/pkg/authapi"
	"github.com/rydolabs/rydo-auth/pkg/httpx"
	"github.com/rydolabs/rydo-auth/pkg/slogx"
)

// RevokeHandler serves POST /v1/auth/revoke. Unknown or already-revoked
// tokens still return 200 OK to prevent token scanning.
type RevokeHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Revoke a refresh token
//	@Description	Invalidates a refresh token so it can never be redeemed.
//	@Description	Idempotent: returns 200 OK even for unknown or already-revoked tokens.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body	authapi.RevokeRequest	true	"The refresh token to revoke"
//	@Success		200		"Token revoked (or was already invalid)"
//	@Failure		400		{object}	authapi.ErrorResponse	"invalid_request"
//	@Failure		429		"rate limited"
//	@Header			200		{string}	Cache-Control	"no-store"
//	@Router			/v1/auth/revoke [post].
func (h *RevokeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.RevokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		authapi.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.TokenService.Revoke(ctx, req.RefreshToken); err != nil {
		// Respond 200 OK even if the token is invalid or unknown.
		log.Warn("revoke refresh failed", "err", err)
	}

	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("{}"))
}
