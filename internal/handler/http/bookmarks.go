package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/internal/store"
	"github.com/minhtran241/bookmarks-api/internal/utils"
	"github.com/minhtran241/bookmarks-api/models"
)

// bookmarkIDFromRequest parses the {id} URL parameter.
func bookmarkIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.listBookmarks").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookmarks, err := h.services.BookmarkService.ListBookmarks(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBookmarks").Msg("error listing bookmarks")
		http.Error(w, "error listing bookmarks", statusFromError(err))
		return
	}

	utils.WriteJSON(w, bookmarks, http.StatusOK)
}

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, found := utils.GetUserFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.createBookmark").Msg("no user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CreateBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createBookmark").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.createBookmark").Msg("create bookmark request failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.BookmarkService.CreateBookmark(ctx, owner, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createBookmark").Msg("error creating bookmark")
		http.Error(w, "error creating bookmark", statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getBookmark").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getBookmark").Msg("invalid bookmark id")
		http.Error(w, "invalid bookmark id", http.StatusBadRequest)
		return
	}

	bookmark, err := h.services.BookmarkService.GetBookmark(ctx, userID, bookmarkID)
	if err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.getBookmark").Msg("error getting bookmark")
		http.Error(w, "error getting bookmark", statusFromError(err))
		return
	}

	utils.WriteJSON(w, bookmark, http.StatusOK)
}

func (h *Handler) editBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	owner, found := utils.GetUserFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.editBookmark").Msg("no user in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.editBookmark").Msg("invalid bookmark id")
		http.Error(w, "invalid bookmark id", http.StatusBadRequest)
		return
	}

	var req models.EditBookmarkRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.editBookmark").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err = h.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.editBookmark").Msg("edit bookmark request failed validation")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.services.BookmarkService.EditBookmark(ctx, owner, bookmarkID, req)
	if err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.editBookmark").Msg("error updating bookmark")
		http.Error(w, "error updating bookmark", statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.deleteBookmark").Msg("no user ID in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteBookmark").Msg("invalid bookmark id")
		http.Error(w, "invalid bookmark id", http.StatusBadRequest)
		return
	}

	if err = h.services.BookmarkService.DeleteBookmark(ctx, userID, bookmarkID); err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		log.Err(err).Str("func", "*Handler.deleteBookmark").Msg("error deleting bookmark")
		http.Error(w, "error deleting bookmark", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
