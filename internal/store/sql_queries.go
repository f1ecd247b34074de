// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cat-api/models"
)

// Placeholders are numbered in order of appearance: PostgreSQL needs $n and
// SQLite binds $n positionally, so the same text serves both backends.
const (
	userColumns = `id, first_name, last_name, email, password_hash, created_at, updated_at`

	createUser = `INSERT INTO users (id, first_name, last_name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns + `;`

	findUserByEmail = `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1;`

	findUserByID = `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;`

	countOtherUsersWithEmail = `SELECT COUNT(1)
		FROM users
		WHERE email = $1 AND id <> $2;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery builds an UPDATE ... RETURNING statement that writes
// only the non-nil fields of update and always bumps updated_at.
func buildUpdateUserQuery(userID string, update models.UserUpdate, now time.Time) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update(models.User{}.TableName())

	if update.FirstName != nil {
		builder = builder.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		builder = builder.Set("last_name", *update.LastName)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}

	query, args, err := builder.
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
