// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1.Health service so that
// orchestrators can probe the API without going through HTTP.
package grpc

import (
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported alongside the overall
// ("") server status.
const ServiceName = "catapi.v1.CatAPI"

// Handler is the root gRPC transport handler.
//
// It owns the health server and reports SERVING from construction until
// [Handler.Shutdown] is called.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health status is SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	hs := health.NewServer()
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		health: hs,
		logger: logger,
	}
}

// Register attaches the health service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Shutdown flips every service to NOT_SERVING. Later status updates are
// ignored by the health server.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("health status set to NOT_SERVING")
	h.health.Shutdown()
}
