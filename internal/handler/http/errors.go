// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a "Bearer <token>" pair.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
)

// Request errors detected before the service layer is called.
var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrMissingUserID is returned when a profile route has no id segment.
	ErrMissingUserID = errors.New("user id is required")
)
