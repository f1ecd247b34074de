// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cat-api/internal/adapter"
	"github.com/MKhiriev/go-cat-api/internal/config"
	"github.com/MKhiriev/go-cat-api/internal/handler"
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/internal/server"
	"github.com/MKhiriev/go-cat-api/internal/service"
	"github.com/MKhiriev/go-cat-api/internal/store"
	"github.com/MKhiriev/go-cat-api/models"
)

const role = "go-cat-api"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role, "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(role, cfg.App.LogLevel)

	if cfg.App.Version == "" {
		if !buildInfo.HasVersion() {
			log.Warn().Msg("APP_VERSION is empty and no build version was injected")
		}
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("grpc_address", cfg.Server.GRPCAddress).
		Str("cat_api_url", cfg.Adapter.CatAPI.BaseURL).
		Str("version", cfg.App.Version).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	catAPI, err := adapter.NewHTTPCatAPIAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cat API adapter")
	}

	services, err := service.NewServices(storages, catAPI, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
