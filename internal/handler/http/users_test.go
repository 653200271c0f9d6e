package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/minhtran241/bookmarks-api/internal/store"
	"github.com/minhtran241/bookmarks-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMe_Success(t *testing.T) {
	h := newTestHandler(t, authedMock(testUser), nil, nil)
	rec := doAuthed(t, h, http.MethodGet, "/api/users/me", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, testUser.UserID, got.UserID)
	assert.Equal(t, testUser.Email, got.Email)

	// The stored password hash must never reach the wire.
	assert.NotContains(t, rec.Body.String(), testUser.Hash)
	assert.NotContains(t, rec.Body.String(), "hash")
}

func TestGetMe_Unauthenticated(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	rec := doAuthed(t, h, http.MethodGet, "/api/users/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEditUser_Success(t *testing.T) {
	firstName := "Alice"
	users := &mockUserService{
		editFn: func(_ context.Context, userID int64, req models.EditUserRequest) (models.User, error) {
			require.Equal(t, testUser.UserID, userID)
			require.NotNil(t, req.FirstName)

			updated := testUser
			updated.FirstName = *req.FirstName
			return updated, nil
		},
	}

	h := newTestHandler(t, authedMock(testUser), nil, users)
	body := jsonBody(t, models.EditUserRequest{FirstName: &firstName})
	rec := doAuthed(t, h, http.MethodPatch, "/api/users", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, firstName, got.FirstName)
	assert.NotContains(t, rec.Body.String(), testUser.Hash)
}

func TestEditUser_EmptyBody(t *testing.T) {
	h := newTestHandler(t, authedMock(testUser), nil, &mockUserService{})
	rec := doAuthed(t, h, http.MethodPatch, "/api/users", "{}")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEditUser_EmailTaken(t *testing.T) {
	email := "taken@x.com"
	users := &mockUserService{
		editFn: func(_ context.Context, _ int64, _ models.EditUserRequest) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}

	h := newTestHandler(t, authedMock(testUser), nil, users)
	body := jsonBody(t, models.EditUserRequest{Email: &email})
	rec := doAuthed(t, h, http.MethodPatch, "/api/users", body)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
