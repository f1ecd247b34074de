// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUpstreamFailure wraps every failed call to the upstream API:
	// transport errors and non-2xx responses alike.
	ErrUpstreamFailure = errors.New("upstream request failed")

	// ErrUpstreamNotFound is returned (wrapped in ErrUpstreamFailure) when the
	// upstream responds with 404.
	ErrUpstreamNotFound = errors.New("upstream resource not found")

	// ErrUpstreamUnauthorized is returned (wrapped in ErrUpstreamFailure) when
	// the upstream rejects the API key.
	ErrUpstreamUnauthorized = errors.New("upstream rejected api key")

	// ErrInvalidBaseURL is returned by the constructor for an unusable URL.
	ErrInvalidBaseURL = errors.New("invalid upstream base url")
)
