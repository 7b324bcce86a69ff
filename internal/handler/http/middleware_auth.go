package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the user's ID
// in the request context with [utils.WithUserID] before delegating to the
// next handler.
//
// A missing header, a malformed header and an invalid or expired token all
// produce the same 401 response, so callers cannot tell them apart.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Info().Err(err).Msg("rejected request without bearer token")
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Info().Err(err).Msg("rejected request with invalid token")
			writeError(w, r, service.ErrUnauthenticated)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, token.UserID)))
	})
}
