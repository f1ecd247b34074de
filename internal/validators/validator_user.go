// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-cat-api/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldRequired checks that every mandatory field of the request is present.
	FieldRequired = "required"

	// FieldFirstName targets the given name (2..50 characters after trimming).
	FieldFirstName = "first_name"

	// FieldLastName targets the family name (2..50 characters after trimming).
	FieldLastName = "last_name"

	// FieldEmail targets the email address format.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password length.
	FieldPassword = "password"

	// FieldUpdate enforces that a profile update carries at least one field.
	FieldUpdate = "update"
)

const (
	minNameLength     = 2
	maxNameLength     = 50
	minPasswordLength = 4
	maxPasswordBytes  = 72
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserValidator implements the Validator interface for the user-facing
// request models: RegisterRequest, LoginRequest and UpdateProfileRequest.
// Both value and pointer forms are accepted.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Fields are checked in the order given and the first failure is returned.
// When no fields are given, the full rule set of the request type is used.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfileRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateRegisterRequest checks, in order: required fields, first name,
// last name, password and email.
func (v *UserValidator) validateRegisterRequest(ctx context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldFirstName, FieldLastName, FieldPassword, FieldEmail}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldRequired:
			if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
				err = ErrMissingRegisterFields
			}
		case FieldFirstName:
			err = validateName(req.FirstName, ErrFirstNameTooShort, ErrFirstNameTooLong)
		case FieldLastName:
			err = validateName(req.LastName, ErrLastNameTooShort, ErrLastNameTooLong)
		case FieldPassword:
			err = validatePassword(req.Password)
		case FieldEmail:
			err = validateEmail(req.Email)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateLoginRequest checks required fields and the email format.
// Password rules are not applied on login: a wrong password is an
// authentication failure, not a validation one.
func (v *UserValidator) validateLoginRequest(ctx context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldEmail}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldRequired:
			if req.Email == "" || req.Password == "" {
				err = ErrMissingLoginFields
			}
		case FieldEmail:
			err = validateEmail(req.Email)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateUpdateProfileRequest requires at least one non-blank field and
// validates only the fields that are present.
func (v *UserValidator) validateUpdateProfileRequest(ctx context.Context, req models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUpdate, FieldFirstName, FieldLastName, FieldEmail}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUpdate:
			if isBlank(req.FirstName) && isBlank(req.LastName) && isBlank(req.Email) {
				err = ErrNoFieldsToUpdate
			}
		case FieldFirstName:
			if !isBlank(req.FirstName) {
				err = validateName(*req.FirstName, ErrFirstNameTooShort, ErrFirstNameTooLong)
			}
		case FieldLastName:
			if !isBlank(req.LastName) {
				err = validateName(*req.LastName, ErrLastNameTooShort, ErrLastNameTooLong)
			}
		case FieldEmail:
			if !isBlank(req.Email) {
				err = validateEmail(strings.TrimSpace(*req.Email))
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateName(name string, tooShort, tooLong error) error {
	n := utf8.RuneCountInString(strings.TrimSpace(name))
	switch {
	case n < minNameLength:
		return tooShort
	case n > maxNameLength:
		return tooLong
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case utf8.RuneCountInString(password) < minPasswordLength:
		return ErrPasswordTooShort
	case len(password) > maxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
