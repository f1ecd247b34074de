// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// cat-api server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body is not valid JSON.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request fails validation
	// and no more specific message is available.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailOrPassword is returned for every failed login. It does
	// not reveal whether the email exists.
	MsgInvalidEmailOrPassword = "invalid email or password"

	// MsgEmailAlreadyExists is returned when a registration or profile update
	// uses an email that belongs to another account.
	MsgEmailAlreadyExists = "a user with this email already exists"

	// MsgUserNotFound is returned when the requested profile does not exist.
	MsgUserNotFound = "user not found"

	// MsgUserIDRequired is returned when a profile route is called without id.
	MsgUserIDRequired = "user id is required"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgAuthorizationRequired is returned when a protected route is called
	// without a bearer token.
	MsgAuthorizationRequired = "authorization required"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgRouteNotFound is returned for unknown paths and for known paths
	// called with an unsupported method.
	MsgRouteNotFound = "route not found"

	MsgBreedIDRequired     = "breed_id parameter is required"
	MsgSearchQueryRequired = "q parameter is required"
	MsgImageIDRequired     = "image_id parameter is required"

	// MsgUpstreamFailure is returned when the cat API call fails.
	MsgUpstreamFailure = "failed to fetch data from the cat api"

	MsgUserRegistered = "user registered successfully"
	MsgLoginSucceeded = "login successful"
	MsgProfileUpdated = "profile updated successfully"
)
