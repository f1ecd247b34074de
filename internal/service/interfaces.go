// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-cat-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService orchestrates account registration, credential checks, profile
// maintenance and token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	GetUserByID(ctx context.Context, userID string) (models.User, error)
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error)
	ChangePassword(ctx context.Context, userID string, newPassword string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CatService relays breed lookups to the upstream cat API.
type CatService interface {
	GetBreeds(ctx context.Context) (json.RawMessage, error)
	GetBreedByID(ctx context.Context, breedID string) (json.RawMessage, error)
	SearchBreeds(ctx context.Context, query string) (json.RawMessage, error)
}

// ImageService relays image lookups to the upstream cat API.
type ImageService interface {
	GetImageByID(ctx context.Context, imageID string) (json.RawMessage, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
