package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// errorResponse is the status and body message for one service error. An
// empty message means the error text itself is returned.
type errorResponse struct {
	status  int
	message string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrUnauthenticated:    {http.StatusUnauthorized, app.MsgTokenFailed},
	service.ErrUnauthorized:       {http.StatusUnauthorized, app.MsgNotAuthorized},
	service.ErrNotFound:           {http.StatusNotFound, app.MsgPasswordNotFound},
	service.ErrValidationFailed:   {http.StatusBadRequest, ""},
	service.ErrConflict:           {http.StatusConflict, app.MsgConflict},
	service.ErrEmailAlreadyExists: {http.StatusConflict, app.MsgUserAlreadyExists},
	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidCredentials},
}

// responseFromError returns the status code and message for err. Unknown
// errors, including storage failures, become 500 "Server error".
func responseFromError(err error) (int, string) {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			if resp.message == "" {
				return resp.status, err.Error()
			}
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgServerError
}

// writeError logs err and writes its mapped {"message": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
