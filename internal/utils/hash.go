// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned when the plaintext exceeds [MaxPasswordBytes].
var ErrPasswordTooLong = errors.New("password cannot exceed 72 bytes")

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// PasswordHasher hashes and verifies user passwords with bcrypt.
// The zero value is not usable: create it with [NewPasswordHasher].
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt hasher with the given work factor.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Cost returns the configured bcrypt work factor.
func (h *PasswordHasher) Cost() int {
	return h.cost
}

// HashPassword produces a salted bcrypt hash of plaintext.
// Two calls with the same input yield different hashes.
func (h *PasswordHasher) HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	if len(plaintext) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword checks plaintext against a stored bcrypt hash.
//
// Returns (true, nil) on match, (false, nil) on mismatch and (false, err)
// when the stored hash is malformed.
func (h *PasswordHasher) VerifyPassword(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error verifying password: %w", err)
	}
}
