// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account as it is persisted in the store.
// It contains identity attributes and the credential hash.
// Sensitive fields must never be exposed outside trusted boundaries:
// use [User.Profile] to build the externally visible projection.
type User struct {
	// UserID is the opaque, store-assigned identifier of the user (UUIDv7).
	UserID string `json:"-"`

	// FirstName is the trimmed given name, 2..50 characters.
	FirstName string `json:"-"`

	// LastName is the trimmed family name, 2..50 characters.
	LastName string `json:"-"`

	// Email is the normalized (trimmed, lowercased) unique email address.
	Email string `json:"-"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the timestamp of the last modification of the account.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// FullName returns "FirstName LastName".
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Profile returns the public projection of the user. The projection type
// has no password field at all, so no serializer can leak the hash.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.UserID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		FullName:  u.FullName(),
		CreatedAt: timePtr(u.CreatedAt),
		UpdatedAt: timePtr(u.UpdatedAt),
	}
}

// UserProfile is the externally visible view of a [User].
// Optional fields are omitted when the endpoint does not return them.
type UserProfile struct {
	ID        string     `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// WithoutFullName drops the computed full name from the projection.
func (p UserProfile) WithoutFullName() UserProfile {
	p.FullName = ""
	return p
}

// WithoutCreatedAt drops the creation timestamp from the projection.
func (p UserProfile) WithoutCreatedAt() UserProfile {
	p.CreatedAt = nil
	return p
}

// WithoutUpdatedAt drops the modification timestamp from the projection.
func (p UserProfile) WithoutUpdatedAt() UserProfile {
	p.UpdatedAt = nil
	return p
}

// UserUpdate describes a partial update of a user record.
// Only non-nil fields are written.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.PasswordHash == nil
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
