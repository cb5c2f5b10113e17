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

// RefreshHandler serves POST /v1/auth/refresh. The presented refresh
// token is rotated: once redeemed it never works again.
type RefreshHandler struct {
	TokenService *service.TokenService
}

// ServeHTTP godoc
//
//	@Summary		Redeem a refresh token
//	@Description	Exchanges a valid refresh token for a new access token and a new refresh token.
//	@Description	The presented token is revoked in the same transaction, so each token redeems at most once.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authapi.RefreshRequest	true	"The refresh token to redeem"
//	@Success		200		{object}	authapi.AuthResponse
//	@Failure		401		{object}	authapi.ErrorResponse	"invalid_grant"
//	@Failure		429		"rate limited"
//	@Header			200		{string}	Cache-Control	"no-store"
//	@Router			/v1/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.RefreshToken == "" {
		authapi.ErrInvalidRequest.WriteError(w)
		return
	}

	result, err := h.TokenService.Refresh(ctx, req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			authapi.ErrInvalidGrant.WriteError(w)
			return
		}
		log.Error("refresh failed", "err", err)
		authapi.ErrServerError.WriteError(w)
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
