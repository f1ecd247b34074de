// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-cat-api/internal/app"
	"github.com/MKhiriev/go-cat-api/internal/logger"
	"github.com/MKhiriev/go-cat-api/internal/utils"
	"github.com/MKhiriev/go-cat-api/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	log.Info().Str("user_id", registeredUser.UserID).Msg("user successfully registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgUserRegistered,
		Token:   token.SignedString,
		User:    registeredUser.Profile().WithoutFullName().WithoutUpdatedAt(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthResponse{
		Message: app.MsgLoginSucceeded,
		Token:   token.SignedString,
		User:    foundUser.Profile().WithoutUpdatedAt(),
	}, http.StatusOK)
}

// decodeJSON decodes the request body into dst. An empty body leaves dst
// untouched so that validation reports the missing fields.
func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
