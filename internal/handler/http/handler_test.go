// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Minh Tran

package http

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/internal/service"
	"github.com/minhtran241/bookmarks-api/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signupFn      func(ctx context.Context, req models.SignupRequest) (models.User, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	resolveUserFn func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	return m.signupFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return stubToken("signed.jwt.token"), nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

func (m *mockAuthService) ResolveUser(ctx context.Context, userID int64) (models.User, error) {
	if m.resolveUserFn != nil {
		return m.resolveUserFn(ctx, userID)
	}
	return models.User{}, service.ErrTokenIsExpiredOrInvalid
}

// ─────────────────────────────────────────────
// Mock BookmarkService
// ─────────────────────────────────────────────

type mockBookmarkService struct {
	createFn func(ctx context.Context, owner models.User, req models.CreateBookmarkRequest) (models.Bookmark, error)
	getFn    func(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Bookmark, error)
	editFn   func(ctx context.Context, owner models.User, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error)
	deleteFn func(ctx context.Context, userID, bookmarkID int64) error
}

func (m *mockBookmarkService) CreateBookmark(ctx context.Context, owner models.User, req models.CreateBookmarkRequest) (models.Bookmark, error) {
	return m.createFn(ctx, owner, req)
}

func (m *mockBookmarkService) GetBookmark(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	return m.getFn(ctx, userID, bookmarkID)
}

func (m *mockBookmarkService) ListBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	return m.listFn(ctx, userID)
}

func (m *mockBookmarkService) EditBookmark(ctx context.Context, owner models.User, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error) {
	return m.editFn(ctx, owner, bookmarkID, req)
}

func (m *mockBookmarkService) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error {
	return m.deleteFn(ctx, userID, bookmarkID)
}

// ─────────────────────────────────────────────
// Mock UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	editFn func(ctx context.Context, userID int64, req models.EditUserRequest) (models.User, error)
}

func (m *mockUserService) EditUser(ctx context.Context, userID int64, req models.EditUserRequest) (models.User, error) {
	return m.editFn(ctx, userID, req)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over the given service mocks. Nil mocks are
// replaced with empty stubs so that tests only wire what they exercise.
func newTestHandler(t *testing.T, auth service.AuthService, bookmarks service.BookmarkService, users service.UserService) *Handler {
	t.Helper()

	if auth == nil {
		auth = &mockAuthService{}
	}
	if bookmarks == nil {
		bookmarks = &mockBookmarkService{}
	}
	if users == nil {
		users = &mockUserService{}
	}

	svcs := &service.Services{
		AuthService:     auth,
		BookmarkService: bookmarks,
		UserService:     users,
	}
	return NewHandler(svcs, "test", logger.Nop())
}

// authedMock returns an AuthService mock whose guard path always succeeds
// and resolves to user.
func authedMock(user models.User) *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: user.UserID}, nil
		},
		resolveUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return user, nil
		},
	}
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

// itoa formats an int64 identifier for use in request paths.
func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// testUser is a convenience fixture used across multiple tests.
var testUser = models.User{
	UserID:   1,
	Email:    "alice@x.com",
	Username: "alice",
	Slug:     "alice",
	Hash:     "$argon2id$stored-hash",
}
