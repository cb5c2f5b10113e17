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

// RegisterHandler serves POST /v1/auth/register. Registration never
// issues tokens; a freshly created user logs in separately.
type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Register a new user account
//	@Description	Creates a new account from email, username and password.
//	@Description	The email must be unique (case-insensitive). No tokens are issued; call /v1/auth/login afterwards.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		authapi.RegisterRequest	true	"Registration details"
//	@Success		201		{object}	authapi.RegisterResponse
//	@Failure		400		{object}	authapi.ErrorResponse	"invalid_request or creation_failed"
//	@Failure		409		{object}	authapi.ErrorResponse	"already_exists"
//	@Failure		429		"rate limited"
//	@Router			/v1/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req authapi.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		authapi.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.AuthService.Register(ctx, service.RegisterParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			authapi.ErrInvalidRequest.WriteError(w)
		case errors.Is(err, service.ErrConflict):
			authapi.ErrAlreadyExists.WriteError(w)
		case errors.Is(err, service.ErrCreation):
			authapi.ErrCreationFailed.WriteError(w)
		default:
			log.Error("register failed", "err", err)
			authapi.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, authapi.RegisterResponse{
		Status: "created",
		UserID: user.ID,
	})
}
