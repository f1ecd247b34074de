// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-cat-api/internal/adapter"
	"github.com/MKhiriev/go-cat-api/internal/logger"
)

type imageService struct {
	catAPI adapter.CatAPIAdapter
	logger *logger.Logger
}

// NewImageService returns an ImageService backed by catAPI.
func NewImageService(catAPI adapter.CatAPIAdapter, logger *logger.Logger) ImageService {
	return &imageService{
		catAPI: catAPI,
		logger: logger,
	}
}

// GetImageByID returns the upstream image record. A blank id fails with
// ErrMissingImageID without calling the upstream.
func (s *imageService) GetImageByID(ctx context.Context, imageID string) (json.RawMessage, error) {
	imageID = strings.TrimSpace(imageID)
	if imageID == "" {
		return nil, ErrMissingImageID
	}

	data, err := s.catAPI.GetImageByID(ctx, imageID)
	if err != nil {
		return nil, upstreamError(ctx, "*imageService.GetImageByID", err)
	}
	return data, nil
}
