// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. Any of them is fatal at
// startup.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive token duration or bcrypt cost out of range).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrMissingTokenSignKey indicates that no token signing secret was supplied.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrInvalidStorageConfigs indicates invalid storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrMissingDSN indicates that no database connection string was supplied.
	ErrMissingDSN = errors.New("database connection string is not configured")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid upstream adapter settings
	// (for example, missing base URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
