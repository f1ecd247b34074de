// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"strings"
)

// CatServiceWrapper defines middleware composition for CatService.
// Implementations wrap an existing CatService to add behavior such as
// parameter validation.
type CatServiceWrapper interface {
	Wrap(CatService) CatService // returns a decorated CatService applying additional behavior
}

// CatValidationService rejects breed requests with missing parameters before
// any upstream call is made.
type CatValidationService struct {
	inner CatService
}

// NewCatValidationService returns a wrapper that validates breed lookups.
func NewCatValidationService() CatServiceWrapper {
	return &CatValidationService{}
}

func (v *CatValidationService) GetBreeds(ctx context.Context) (json.RawMessage, error) {
	return v.inner.GetBreeds(ctx)
}

func (v *CatValidationService) GetBreedByID(ctx context.Context, breedID string) (json.RawMessage, error) {
	breedID = strings.TrimSpace(breedID)
	if breedID == "" {
		return nil, ErrMissingBreedID
	}
	return v.inner.GetBreedByID(ctx, breedID)
}

func (v *CatValidationService) SearchBreeds(ctx context.Context, query string) (json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrMissingSearchQuery
	}
	return v.inner.SearchBreeds(ctx, query)
}

func (v *CatValidationService) Wrap(wrapped CatService) CatService {
	v.inner = wrapped
	return v
}
