// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-cat-api/internal/app"
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/internal/service"
	"github.com/MKhiriev/go-cat-api/internal/utils"
	"github.com/MKhiriev/go-cat-api/internal/validators"
	"github.com/MKhiriev/go-cat-api/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:                http.StatusBadRequest,
	ErrMissingUserID:              http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,

	service.ErrValidation:              http.StatusBadRequest,
	service.ErrEmailAlreadyExists:      http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrMissingBreedID:          http.StatusBadRequest,
	service.ErrMissingSearchQuery:      http.StatusBadRequest,
	service.ErrMissingImageID:          http.StatusBadRequest,
	service.ErrUpstreamFailure:         http.StatusInternalServerError,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessages is ordered: the first matching entry wins.
var errorMessages = []struct {
	target  error
	message string
}{
	{ErrInvalidJSON, app.MsgInvalidJSON},
	{ErrMissingUserID, app.MsgUserIDRequired},
	{ErrEmptyAuthorizationHeader, app.MsgAuthorizationRequired},
	{ErrInvalidAuthorizationHeader, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrTokenIsExpiredOrInvalid, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrEmailAlreadyExists, app.MsgEmailAlreadyExists},
	{service.ErrInvalidCredentials, app.MsgInvalidEmailOrPassword},
	{service.ErrUserNotFound, app.MsgUserNotFound},
	{service.ErrMissingBreedID, app.MsgBreedIDRequired},
	{service.ErrMissingSearchQuery, app.MsgSearchQueryRequired},
	{service.ErrMissingImageID, app.MsgImageIDRequired},
	{service.ErrUpstreamFailure, app.MsgUpstreamFailure},
}

// validationErrors carry their own user-facing text.
var validationErrors = []error{
	validators.ErrMissingRegisterFields,
	validators.ErrMissingLoginFields,
	validators.ErrFirstNameTooShort,
	validators.ErrFirstNameTooLong,
	validators.ErrLastNameTooShort,
	validators.ErrLastNameTooLong,
	validators.ErrPasswordTooShort,
	validators.ErrPasswordTooLong,
	validators.ErrInvalidEmail,
	validators.ErrNoFieldsToUpdate,
}

// messageFromError returns the text sent to the client for err. Internal
// details never leave the server: unknown errors become a generic message.
func messageFromError(err error) string {
	if errors.Is(err, service.ErrValidation) {
		for _, target := range validationErrors {
			if errors.Is(err, target) {
				return target.Error()
			}
		}
		return app.MsgInvalidDataProvided
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}

// writeError logs err with its internal cause and writes the mapped
// status and message as a JSON body.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.MessageResponse{Message: messageFromError(err)}, status); wErr != nil {
		log.Err(wErr).Str("func", fn).Msg("error writing error response")
	}
}
