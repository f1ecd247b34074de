// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cat-api/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getBreeds(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.CatService.GetBreeds(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getBreeds", err)
		return
	}

	utils.WriteRawJSON(w, data, http.StatusOK)
}

func (h *Handler) getBreedByID(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.CatService.GetBreedByID(r.Context(), chi.URLParam(r, "breed_id"))
	if err != nil {
		writeError(w, r, "*Handler.getBreedByID", err)
		return
	}

	utils.WriteRawJSON(w, data, http.StatusOK)
}

func (h *Handler) searchBreeds(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.CatService.SearchBreeds(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, "*Handler.searchBreeds", err)
		return
	}

	utils.WriteRawJSON(w, data, http.StatusOK)
}
