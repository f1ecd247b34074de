// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers built at startup.
package handler

import (
	"github.com/MKhiriev/go-cat-api/internal/config"
	"github.com/MKhiriev/go-cat-api/internal/handler/grpc"
	"github.com/MKhiriev/go-cat-api/internal/handler/http"
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/internal/service"
)

// Handlers holds one handler per enabled transport. A nil field means the
// transport has no listen address configured.
type Handlers struct {
	// HTTP serves the REST API, /metrics and /api/version.
	HTTP *http.Handler

	// GRPC serves grpc.health.v1.Health only.
	GRPC *grpc.Handler
}

// NewHandlers builds a handler for every transport whose address is set in
// cfg and fails when there are none.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
