// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation wraps every input validation failure. The wrapped
	// validators error carries the user-facing message.
	ErrValidation = errors.New("validation failed")

	ErrEmailAlreadyExists = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Proxy errors.
var (
	ErrMissingBreedID     = errors.New("breed_id parameter is required")
	ErrMissingSearchQuery = errors.New("q parameter is required")
	ErrMissingImageID     = errors.New("image_id parameter is required")

	// ErrUpstreamFailure is returned for any failed upstream call. The
	// upstream cause is wrapped for logging only.
	ErrUpstreamFailure = errors.New("failed to fetch data from the cat api")
)
