// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-cat-api/internal/config"
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/internal/metrics"
	"github.com/MKhiriev/go-cat-api/internal/store"
	"github.com/MKhiriev/go-cat-api/internal/utils"
	"github.com/MKhiriev/go-cat-api/internal/validators"
	"github.com/MKhiriev/go-cat-api/models"
)

// Operation labels used for auth metrics.
const (
	opRegister       = "register"
	opLogin          = "login"
	opUpdateProfile  = "update_profile"
	opChangePassword = "change_password"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, profile updates
// and JWT token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create, look up and
	// update users.
	userRepository store.UserRepository

	// validator enforces the input rules of every request model.
	validator validators.Validator

	// hasher hashes and verifies passwords with the configured bcrypt cost.
	hasher *utils.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		hasher:         utils.NewPasswordHasher(cfg.PasswordHashCost),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The checks run in a fixed order and the first failure wins: required
// fields, first name, last name, password, email format. The email is then
// normalized and checked for duplicates before the password is hashed and
// the user is persisted.
//
// Returns the persisted user or:
//   - an error wrapping ErrValidation for malformed input.
//   - ErrEmailAlreadyExists if the normalized email is taken.
//   - a wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.RegisterUser").Msg("invalid registration data")
		metrics.RecordAuthOperation(opRegister, metrics.OutcomeValidationError)
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	email := normalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Debug().Str("func", "*authService.RegisterUser").Str("email", email).Msg("email already registered")
		metrics.RecordAuthOperation(opRegister, metrics.OutcomeDuplicateEmail)
		return models.User{}, ErrEmailAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user search by email failed")
		metrics.RecordAuthOperation(opRegister, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hash, err := a.hasher.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("password hashing failed")
		metrics.RecordAuthOperation(opRegister, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			metrics.RecordAuthOperation(opRegister, metrics.OutcomeDuplicateEmail)
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("user creation ended with error")
		metrics.RecordAuthOperation(opRegister, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	metrics.RecordAuthOperation(opRegister, metrics.OutcomeSuccess)
	log.Info().Str("func", "*authService.RegisterUser").Str("user_id", registeredUser.UserID).Msg("user registered")

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both fields are present and that the email is well
// formed, then looks the account up by normalized email and verifies the
// password. An unknown email and a wrong password both yield
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.Login").Msg("invalid login data")
		metrics.RecordAuthOperation(opLogin, metrics.OutcomeValidationError)
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			metrics.RecordAuthOperation(opLogin, metrics.OutcomeInvalidCredentials)
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		metrics.RecordAuthOperation(opLogin, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if len(req.Password) > utils.MaxPasswordBytes {
		metrics.RecordAuthOperation(opLogin, metrics.OutcomeInvalidCredentials)
		return models.User{}, ErrInvalidCredentials
	}

	ok, err := a.hasher.VerifyPassword(req.Password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", foundUser.UserID).Msg("stored password hash is unusable")
		metrics.RecordAuthOperation(opLogin, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Debug().Str("func", "*authService.Login").Str("user_id", foundUser.UserID).Msg("wrong password")
		metrics.RecordAuthOperation(opLogin, metrics.OutcomeInvalidCredentials)
		return models.User{}, ErrInvalidCredentials
	}

	metrics.RecordAuthOperation(opLogin, metrics.OutcomeSuccess)

	return foundUser, nil
}

// GetUserByID returns the user with the given id. Absent users and malformed
// ids both yield ErrUserNotFound.
func (a *authService) GetUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(userID) == "" {
		return models.User{}, ErrUserNotFound
	}

	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*authService.GetUserByID").Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// UpdateProfile applies a partial update of first name, last name and email.
//
// Values are trimmed and blank values dropped. When nothing remains the call
// fails with ErrValidation before the repository is touched. The remaining
// values are validated with the registration rules, the email is normalized
// and the update is delegated to the repository.
func (a *authService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.UpdateProfile").Msg("invalid profile update")
		metrics.RecordAuthOperation(opUpdateProfile, metrics.OutcomeValidationError)
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	update := models.UserUpdate{
		FirstName: trimmedOrNil(req.FirstName),
		LastName:  trimmedOrNil(req.LastName),
		Email:     trimmedOrNil(req.Email),
	}
	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		update.Email = &email
	}

	updated, err := a.updateUser(ctx, opUpdateProfile, userID, update)
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("func", "*authService.UpdateProfile").Str("user_id", userID).Msg("profile updated")

	return updated, nil
}

// ChangePassword replaces the password of the given user. The new password
// is validated with the registration rule before it is hashed.
func (a *authService) ChangePassword(ctx context.Context, userID string, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.RegisterRequest{Password: newPassword}, validators.FieldPassword); err != nil {
		metrics.RecordAuthOperation(opChangePassword, metrics.OutcomeValidationError)
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	hash, err := a.hasher.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Str("func", "*authService.ChangePassword").Msg("password hashing failed")
		metrics.RecordAuthOperation(opChangePassword, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	updated, err := a.updateUser(ctx, opChangePassword, userID, models.UserUpdate{PasswordHash: &hash})
	if err != nil {
		return models.User{}, err
	}

	log.Info().Str("func", "*authService.ChangePassword").Str("user_id", userID).Msg("password changed")

	return updated, nil
}

// updateUser delegates to the repository and maps its sentinels.
func (a *authService) updateUser(ctx context.Context, operation, userID string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(userID) == "" {
		metrics.RecordAuthOperation(operation, metrics.OutcomeNotFound)
		return models.User{}, ErrUserNotFound
	}

	updated, err := a.userRepository.UpdateUser(ctx, userID, update)
	switch {
	case err == nil:
		metrics.RecordAuthOperation(operation, metrics.OutcomeSuccess)
		return updated, nil
	case errors.Is(err, store.ErrNoUserWasFound):
		metrics.RecordAuthOperation(operation, metrics.OutcomeNotFound)
		return models.User{}, ErrUserNotFound
	case errors.Is(err, store.ErrEmailAlreadyExists):
		metrics.RecordAuthOperation(operation, metrics.OutcomeDuplicateEmail)
		return models.User{}, ErrEmailAlreadyExists
	case errors.Is(err, store.ErrNothingToUpdate):
		metrics.RecordAuthOperation(operation, metrics.OutcomeValidationError)
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, validators.ErrNoFieldsToUpdate)
	default:
		log.Err(err).Str("func", "*authService.updateUser").Str("user_id", userID).Msg("user update failed")
		metrics.RecordAuthOperation(operation, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the expiry and the issuer claim. Any validation failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
