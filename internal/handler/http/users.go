package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/internal/store"
	"github.com/minhtran241/bookmarks-api/internal/utils"
	"github.com/minhtran241/bookmarks-api/models"
)

// getMe returns the profile of the authenticated user. The record was
// already loaded by the auth middleware, so no extra lookup happens here.
func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, found := utils.GetUserFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getMe").Msg("no user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user.Response(), http.StatusOK)
}

func (h *Handler) editUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.editUser").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.EditUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.editUser").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.editUser").Msg("edit user request failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.services.UserService.EditUser(ctx, userID, req)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			log.Err(err).Str("func", "*Handler.editUser").Msg("credentials already taken")
			http.Error(w, "Credentials taken", http.StatusForbidden)
			return
		}
		log.Err(err).Str("func", "*Handler.editUser").Msg("error updating user")
		http.Error(w, "error updating user", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated.Response(), http.StatusOK)
}
