// Package store implements the persistence layer of the bookmarks API.
// It exposes narrow repository interfaces over a relational database so the
// service layer never depends on a specific storage engine.
package store

import (
	"context"

	"github.com/minhtran241/bookmarks-api/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. A uniqueness violation on email or username is
	// reported as [ErrUserAlreadyExists] without disclosing which field
	// collided.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account registered under the given email,
	// or [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID returns the account with the given identifier,
	// or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies a partial profile edit and returns the updated
	// account. Nil fields of upd are left unchanged.
	UpdateUser(ctx context.Context, userID int64, upd models.UserUpdate) (models.User, error)
}

// BookmarkRepository is the data-access contract for user-owned bookmarks.
// Every method is scoped by the owning user: records that exist but belong
// to someone else are indistinguishable from absent ones.
type BookmarkRepository interface {
	CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)
	GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)
	GetAllBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)
	UpdateBookmark(ctx context.Context, userID, bookmarkID int64, upd models.BookmarkUpdate) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error
}

// ErrorClassificator inspects driver-level errors and recognises well-known
// conditions that repositories translate into domain sentinels.
type ErrorClassificator interface {
	// IsUniqueViolation reports whether err was caused by a UNIQUE
	// constraint violation.
	IsUniqueViolation(err error) bool
}
