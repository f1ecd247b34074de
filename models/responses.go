// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MessageResponse is the generic JSON body used for errors and
// simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is returned by register and login: the issued bearer token
// together with the public projection of the user.
type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}

// ProfileResponse is returned by GET /users/{id} and by profile updates.
type ProfileResponse struct {
	Message string      `json:"message,omitempty"`
	User    UserProfile `json:"user"`
}
