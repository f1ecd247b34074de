// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/internal/utils"
	"github.com/MKhiriev/go-cat-api/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation, lookup and partial updates against
// the "users" table on PostgreSQL or SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	ids    *utils.UUIDGenerator
	now    func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
		now:    utcNow,
	}
}

// utcNow truncates to microseconds, the precision PostgreSQL keeps.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	return user, err
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	now := r.now()
	user.UserID = r.ids.Generate()
	user.Email = normalizeEmail(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now

	row := r.db.QueryRowContext(ctx, createUser,
		user.UserID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)

	created, err := scanUser(row)
	if err != nil {
		class := r.db.classify(err)
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Stringer("class", class).
			Msg("error inserting user")

		if class == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user whose normalized email matches email.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByEmail, normalizeEmail(email)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user by email")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserByID retrieves the user with the given id. A malformed id
// reports [ErrNoUserWasFound] without touching the database.
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if !utils.IsValidUUID(userID) {
		return models.User{}, ErrNoUserWasFound
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	user, err := scanUser(r.db.QueryRowContext(ctx, findUserByID, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Str("user_id", userID).Msg("error finding user by id")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateUser writes the non-nil fields of update and bumps updated_at.
//
// When the email changes, it first checks that no other user holds it and
// then relies on the UNIQUE constraint for concurrent writers.
//
// Error handling:
//   - empty update → [ErrNothingToUpdate].
//   - malformed or unknown id → [ErrNoUserWasFound].
//   - email taken by another user → [ErrEmailAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, userID string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*userRepository.UpdateUser").
		Str("user_id", userID).
		Logger()

	if !utils.IsValidUUID(userID) {
		return models.User{}, ErrNoUserWasFound
	}

	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		update.Email = &email
	}

	query, args, err := buildUpdateUserQuery(userID, update, r.now())
	if err != nil {
		log.Err(err).Msg("error building update query")
		return models.User{}, err
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if update.Email != nil {
		var taken int
		if err := r.db.QueryRowContext(ctx, countOtherUsersWithEmail, *update.Email, userID).Scan(&taken); err != nil {
			log.Err(err).Msg("error checking email ownership")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
		if taken > 0 {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		class := r.db.classify(err)
		log.Err(err).Stringer("class", class).Msg("error updating user")
		if class == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
