package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, app.MsgServerRunning, http.StatusOK)
}

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
