package http

import (
	"errors"
	"net/http"

	"github.com/minhtran241/bookmarks-api/internal/service"
	"github.com/minhtran241/bookmarks-api/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	// Both taken credentials and bad credentials answer 403, matching the
	// anti-enumeration stance of the auth endpoints.
	service.ErrInvalidCredentials: http.StatusForbidden,

	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUserAlreadyExists: http.StatusForbidden,
	store.ErrNoUserWasFound:    http.StatusNotFound,
	store.ErrBookmarkNotFound:  http.StatusNotFound,
	store.ErrEmptyUpdate:       http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
