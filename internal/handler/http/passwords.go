// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// listPasswords handles GET /api/passwords.
//
// It responds with 200 and a JSON array of the caller's records, newest
// first. An empty vault yields [] rather than null.
func (h *Handler) listPasswords(w http.ResponseWriter, r *http.Request) {
	credentials, err := h.services.CredentialService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, credentials, http.StatusOK)
}

// createPassword handles POST /api/passwords and echoes the stored record.
//
// Responses:
//   - 201 with the record, including its ID and timestamps.
//   - 400 "Invalid JSON" if the body cannot be decoded.
//   - 400 with the validation message if a required field is missing.
func (h *Handler) createPassword(w http.ResponseWriter, r *http.Request) {
	var input models.CredentialInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		logger.FromRequest(r).Info().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.CredentialService.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updatePassword handles PUT /api/passwords/{id}. Fields absent from the
// body are replaced with empty strings.
//
// Responses:
//   - 200 with the updated record.
//   - 400 "Invalid JSON" if the body cannot be decoded.
//   - 403 if the record belongs to another user, 404 if it does not exist.
//   - 409 if the record changed concurrently.
func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	var input models.CredentialInput
	if err := utils.DecodeJSON(w, r, &input); err != nil {
		logger.FromRequest(r).Info().Err(err).Msg("invalid JSON was passed")
		writeMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.CredentialService.Update(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deletePassword handles DELETE /api/passwords/{id}.
//
// It responds with 200 {"message": "Password deleted"}, or 403/404 under the
// same rules as updatePassword.
func (h *Handler) deletePassword(w http.ResponseWriter, r *http.Request) {
	if err := h.services.CredentialService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, app.MsgPasswordDeleted, http.StatusOK)
}
