// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-cat-api/internal/app"
	"github.com/MKhiriev/go-cat-api/internal/utils"
	"github.com/MKhiriev/go-cat-api/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "id"))
	if userID == "" {
		writeError(w, r, "*Handler.getProfile", ErrMissingUserID)
		return
	}

	user, err := h.services.AuthService.GetUserByID(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.getProfile", err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{User: user.Profile()}, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(chi.URLParam(r, "id"))
	if userID == "" {
		writeError(w, r, "*Handler.updateProfile", ErrMissingUserID)
		return
	}

	var req models.UpdateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	user, err := h.services.AuthService.UpdateProfile(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{
		Message: app.MsgProfileUpdated,
		User:    user.Profile().WithoutCreatedAt(),
	}, http.StatusOK)
}
