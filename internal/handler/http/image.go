// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cat-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

// getImageByID serves both /images/{image_id} and /images/. The latter has
// no id and is rejected by the service before any upstream call.
func (h *Handler) getImageByID(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.ImageService.GetImageByID(r.Context(), chi.URLParam(r, "image_id"))
	if err != nil {
		writeError(w, r, "*Handler.getImageByID", err)
		return
	}

	utils.WriteRawJSON(w, data, http.StatusOK)
}
