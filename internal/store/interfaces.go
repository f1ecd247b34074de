// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-cat-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
//
// Implementations must enforce email uniqueness at the storage layer and
// report violations as [ErrEmailAlreadyExists]. Lookups that match nothing
// report [ErrNoUserWasFound].
type UserRepository interface {
	// CreateUser stores a new user and returns it with the assigned id and
	// timestamps.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by the normalized email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by id.
	FindUserByID(ctx context.Context, userID string) (models.User, error)

	// UpdateUser applies the non-nil fields of update to the user with the
	// given id and returns the updated record.
	UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error)
}
