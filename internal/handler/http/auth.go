package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, request.Name, request.Email, request.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.respondWithToken(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := utils.DecodeJSON(w, r, &request); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	h.respondWithToken(w, r, user, http.StatusOK)
}

// respondWithToken issues a token for user and writes {token, user}.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user}, status)
}
