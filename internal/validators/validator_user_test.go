// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cat-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr(s string) *string { return &s }

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret1",
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestNewUserValidator(t *testing.T) {
	require.NotNil(t, NewUserValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("RegisterRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validRegisterRequest()))
	})

	t.Run("RegisterRequest pointer", func(t *testing.T) {
		req := validRegisterRequest()
		require.NoError(t, v.Validate(ctx, &req))
	})

	t.Run("LoginRequest pointer", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, &models.LoginRequest{Email: "a@b.co", Password: "x"}))
	})

	t.Run("UpdateProfileRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.UpdateProfileRequest{FirstName: ptr("Grace")}))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validRegisterRequest(), "nickname"), ErrUnknownField)
		require.ErrorIs(t, v.Validate(ctx, models.LoginRequest{}, "nickname"), ErrUnknownField)
		require.ErrorIs(t, v.Validate(ctx, models.UpdateProfileRequest{}, "nickname"), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// RegisterRequest
// ---------------------------------------------------------------------------

func TestValidateRegisterRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.RegisterRequest) {}},
		{name: "missing first name", mutate: func(r *models.RegisterRequest) { r.FirstName = "" }, wantErr: ErrMissingRegisterFields},
		{name: "missing last name", mutate: func(r *models.RegisterRequest) { r.LastName = "" }, wantErr: ErrMissingRegisterFields},
		{name: "missing email", mutate: func(r *models.RegisterRequest) { r.Email = "" }, wantErr: ErrMissingRegisterFields},
		{name: "missing password", mutate: func(r *models.RegisterRequest) { r.Password = "" }, wantErr: ErrMissingRegisterFields},
		{name: "short first name after trim", mutate: func(r *models.RegisterRequest) { r.FirstName = " A " }, wantErr: ErrFirstNameTooShort},
		{name: "long first name", mutate: func(r *models.RegisterRequest) { r.FirstName = strings.Repeat("a", 51) }, wantErr: ErrFirstNameTooLong},
		{name: "first name at max", mutate: func(r *models.RegisterRequest) { r.FirstName = strings.Repeat("a", 50) }},
		{name: "multibyte first name counts runes", mutate: func(r *models.RegisterRequest) { r.FirstName = "Яя" }},
		{name: "short last name", mutate: func(r *models.RegisterRequest) { r.LastName = "L" }, wantErr: ErrLastNameTooShort},
		{name: "long last name", mutate: func(r *models.RegisterRequest) { r.LastName = strings.Repeat("b", 51) }, wantErr: ErrLastNameTooLong},
		{name: "short password", mutate: func(r *models.RegisterRequest) { r.Password = "abc" }, wantErr: ErrPasswordTooShort},
		{name: "password at min", mutate: func(r *models.RegisterRequest) { r.Password = "abcd" }},
		{name: "password over bcrypt limit", mutate: func(r *models.RegisterRequest) { r.Password = strings.Repeat("p", 73) }, wantErr: ErrPasswordTooLong},
		{name: "email without at", mutate: func(r *models.RegisterRequest) { r.Email = "not-an-email" }, wantErr: ErrInvalidEmail},
		{name: "email without dot", mutate: func(r *models.RegisterRequest) { r.Email = "ada@example" }, wantErr: ErrInvalidEmail},
		{name: "email with space", mutate: func(r *models.RegisterRequest) { r.Email = "ada @example.com" }, wantErr: ErrInvalidEmail},
		{
			name: "first failing rule wins",
			mutate: func(r *models.RegisterRequest) {
				r.FirstName = "A"
				r.Password = "x"
				r.Email = "bad"
			},
			wantErr: ErrFirstNameTooShort,
		},
		{
			name: "password checked before email",
			mutate: func(r *models.RegisterRequest) {
				r.Password = "x"
				r.Email = "bad"
			},
			wantErr: ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := v.Validate(ctx, req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateRegisterRequest_FieldScoping(t *testing.T) {
	v := NewUserValidator()
	req := models.RegisterRequest{Password: "abc"}

	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldPassword), ErrPasswordTooShort)

	req.Password = "abcd"
	assert.NoError(t, v.Validate(context.Background(), req, FieldPassword))
}

// ---------------------------------------------------------------------------
// LoginRequest
// ---------------------------------------------------------------------------

func TestValidateLoginRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.LoginRequest
		wantErr error
	}{
		{name: "valid", req: models.LoginRequest{Email: "ada@example.com", Password: "x"}},
		{name: "missing email", req: models.LoginRequest{Password: "secret"}, wantErr: ErrMissingLoginFields},
		{name: "missing password", req: models.LoginRequest{Email: "ada@example.com"}, wantErr: ErrMissingLoginFields},
		{name: "bad email", req: models.LoginRequest{Email: "ada", Password: "secret"}, wantErr: ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// UpdateProfileRequest
// ---------------------------------------------------------------------------

func TestValidateUpdateProfileRequest(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.UpdateProfileRequest
		wantErr error
	}{
		{name: "empty", req: models.UpdateProfileRequest{}, wantErr: ErrNoFieldsToUpdate},
		{name: "only blanks", req: models.UpdateProfileRequest{FirstName: ptr("  "), Email: ptr("")}, wantErr: ErrNoFieldsToUpdate},
		{name: "first name only", req: models.UpdateProfileRequest{FirstName: ptr("Grace")}},
		{name: "blank ignored next to valid", req: models.UpdateProfileRequest{FirstName: ptr(" "), LastName: ptr("Hopper")}},
		{name: "short first name", req: models.UpdateProfileRequest{FirstName: ptr("G")}, wantErr: ErrFirstNameTooShort},
		{name: "long last name", req: models.UpdateProfileRequest{LastName: ptr(strings.Repeat("h", 51))}, wantErr: ErrLastNameTooLong},
		{name: "bad email", req: models.UpdateProfileRequest{Email: ptr("grace@")}, wantErr: ErrInvalidEmail},
		{name: "padded email", req: models.UpdateProfileRequest{Email: ptr("  grace@navy.mil ")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
