package service

import (
	"context"

	"github.com/minhtran241/bookmarks-api/models"
)

// AuthService covers the account lifecycle: registration, credential
// verification, and JWT issuance/parsing for the request guard.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ResolveUser(ctx context.Context, userID int64) (models.User, error)
}

// BookmarkService covers per-owner bookmark CRUD. Every method takes the
// owner identity from the authenticated request, never from the payload.
type BookmarkService interface {
	CreateBookmark(ctx context.Context, owner models.User, req models.CreateBookmarkRequest) (models.Bookmark, error)
	GetBookmark(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)
	ListBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)
	EditBookmark(ctx context.Context, owner models.User, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error
}

// UserService covers profile reads and edits for the authenticated user.
type UserService interface {
	EditUser(ctx context.Context, userID int64, req models.EditUserRequest) (models.User, error)
}
