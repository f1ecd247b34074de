// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer access to the upstream cat API.
//
// The primary abstraction is [CatAPIAdapter], which decouples the service
// layer from the HTTP client. The package ships an HTTP/REST implementation
// ([NewHTTPCatAPIAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling.
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CatAPIAdapter fetches breed and image documents from the upstream cat API.
// Every method returns the upstream JSON body unchanged.
type CatAPIAdapter interface {
	// GetBreeds returns the list of all breeds.
	GetBreeds(ctx context.Context) (json.RawMessage, error)

	// GetBreedByID returns a single breed.
	GetBreedByID(ctx context.Context, breedID string) (json.RawMessage, error)

	// SearchBreeds returns the breeds matching query.
	SearchBreeds(ctx context.Context, query string) (json.RawMessage, error)

	// GetImageByID returns a single image record.
	GetImageByID(ctx context.Context, imageID string) (json.RawMessage, error)
}
