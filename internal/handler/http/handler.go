// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-cat-api/internal/config"
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/internal/metrics"
	"github.com/MKhiriev/go-cat-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	cors           CORSConfig
	requestTimeout time.Duration
	registry       *prometheus.Registry

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	cors := DefaultCORSConfig()
	cors.AllowedOrigins = cfg.CORSAllowedOrigins

	return &Handler{
		services:       services,
		cors:           cors,
		requestTimeout: cfg.RequestTimeout,
		registry:       metrics.NewRegistry(),
		logger:         logger,
	}
}
