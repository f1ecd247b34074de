// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-cat-api/internal/adapter"
	"github.com/MKhiriev/go-cat-api/internal/logger"
)

// catService relays breed requests to the upstream adapter. Parameter
// checks live in catValidationService.
type catService struct {
	catAPI adapter.CatAPIAdapter
	logger *logger.Logger
}

// NewCatService returns a CatService backed by catAPI and wrapped with
// parameter validation.
func NewCatService(catAPI adapter.CatAPIAdapter, logger *logger.Logger) CatService {
	inner := &catService{
		catAPI: catAPI,
		logger: logger,
	}
	return NewCatValidationService().Wrap(inner)
}

func (c *catService) GetBreeds(ctx context.Context) (json.RawMessage, error) {
	data, err := c.catAPI.GetBreeds(ctx)
	if err != nil {
		return nil, upstreamError(ctx, "*catService.GetBreeds", err)
	}
	return data, nil
}

func (c *catService) GetBreedByID(ctx context.Context, breedID string) (json.RawMessage, error) {
	data, err := c.catAPI.GetBreedByID(ctx, breedID)
	if err != nil {
		return nil, upstreamError(ctx, "*catService.GetBreedByID", err)
	}
	return data, nil
}

func (c *catService) SearchBreeds(ctx context.Context, query string) (json.RawMessage, error) {
	data, err := c.catAPI.SearchBreeds(ctx, query)
	if err != nil {
		return nil, upstreamError(ctx, "*catService.SearchBreeds", err)
	}
	return data, nil
}

// upstreamError logs the upstream cause and wraps it in ErrUpstreamFailure.
func upstreamError(ctx context.Context, fn string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("upstream call failed")
	return fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
}
