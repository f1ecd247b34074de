// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRegisterFields = errors.New("all fields are required: firstName, lastName, email, password")
	ErrMissingLoginFields    = errors.New("email and password are required")
	ErrFirstNameTooShort     = errors.New("first name must be at least 2 characters")
	ErrFirstNameTooLong      = errors.New("first name cannot exceed 50 characters")
	ErrLastNameTooShort      = errors.New("last name must be at least 2 characters")
	ErrLastNameTooLong       = errors.New("last name cannot exceed 50 characters")
	ErrPasswordTooShort      = errors.New("password must be at least 4 characters")
	ErrPasswordTooLong       = errors.New("password cannot exceed 72 bytes")
	ErrInvalidEmail          = errors.New("invalid email format")
	ErrNoFieldsToUpdate      = errors.New("no valid fields provided for update")
)
