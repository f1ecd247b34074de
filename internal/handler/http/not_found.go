// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-cat-api/internal/app"
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/internal/utils"
	"github.com/MKhiriev/go-cat-api/models"
)

// routeNotFound is registered both as the router's NotFound and
// MethodNotAllowed handler, so a known path called with an unsupported
// method is indistinguishable from a path that does not exist.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.MessageResponse{Message: app.MsgRouteNotFound}, http.StatusNotFound); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.routeNotFound").Msg("error writing response")
	}
}
