package http

import (
	"net/http"

	"github.com/rydolabs/rydo-auth/internal/auth/service"
	"github.com/rydolabs/rydo-auth/pkg/authapi"
	"github.com/rydolabs/rydo-auth/pkg/httpx"
	"github.com/rydolabs/rydo-auth/pkg/slogx"
)

// MeHandler serves GET /v1/auth/me for the bearer-authenticated user.
type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Get the authenticated user
//	@Description	Returns the profile of the user the presented access token belongs to.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authapi.UserResponse
//	@Failure		401	{object}	authapi.ErrorResponse	"invalid_token"
//	@Failure		500	{object}	authapi.ErrorResponse	"server_error"
//	@Router			/v1/auth/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	// Subject (user id) was placed in context by the authn middleware.
	userID := httpx.UserIDFromContext(ctx)
	if userID == "" {
		authapi.ErrInvalidToken.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		log.Warn("failed to load user", "user_id", userID, "err", err)
		authapi.ErrServerError.WriteError(w)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, authapi.UserResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}
