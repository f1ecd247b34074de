// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-cat-api/internal/adapter"
	"github.com/MKhiriev/go-cat-api/internal/config"
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/internal/store"
)

type Services struct {
	AuthService    AuthService
	CatService     CatService
	ImageService   ImageService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, catAPI adapter.CatAPIAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CatService:     NewCatService(catAPI, logger),
		ImageService:   NewImageService(catAPI, logger),
		AppInfoService: appInfoService,
	}, nil
}
