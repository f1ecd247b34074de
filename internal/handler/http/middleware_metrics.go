// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-cat-api/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that matched no route, keeping the route
// label cardinality bounded.
const unmatchedRoute = "unmatched"

// withMetrics records every request in the Prometheus HTTP metrics, labelled
// by the chi route pattern rather than the raw path.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		metrics.RecordHTTPRequest(r.Method, route, mw.statusCode(), time.Since(start))
	})
}
