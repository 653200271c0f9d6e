// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Minh Tran

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/internal/service"
	"github.com/minhtran241/bookmarks-api/internal/store"
	"github.com/minhtran241/bookmarks-api/internal/utils"
	"github.com/minhtran241/bookmarks-api/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("signup request failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserAlreadyExists):
			// The body does not say whether the email or the username
			// collided, so a caller cannot probe for registered emails.
			log.Err(err).Msg("credentials already taken")
			http.Error(w, "Credentials taken", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user signup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully signed up")

	utils.WriteJSON(w, models.AccessTokenResponse{AccessToken: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Msg("login request failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("incorrect credentials")
			http.Error(w, "Incorrect credentials", http.StatusForbidden)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AccessTokenResponse{AccessToken: token.SignedString}, http.StatusOK)
}
