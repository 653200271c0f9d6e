// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Minh Tran

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minhtran241/bookmarks-api/internal/service"
	"github.com/minhtran241/bookmarks-api/internal/store"
	"github.com/minhtran241/bookmarks-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validSignup = models.SignupRequest{
	Email:    "alice@x.com",
	Username: "alice",
	Password: "secret",
}

var validLogin = models.LoginRequest{
	Email:    "alice@x.com",
	Password: "secret",
}

// TestSignup_Success verifies that a valid signup request results in
// 201 Created and a JSON body carrying the issued access token.
func TestSignup_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		signupFn: func(_ context.Context, req models.SignupRequest) (models.User, error) {
			return models.User{UserID: 1, Email: req.Email, Username: req.Username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(jsonBody(t, validSignup)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.AccessTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.AccessToken)
}

// TestSignup_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestSignup_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestSignup_ValidationFailures exercises the body validation performed
// before the service is ever called.
func TestSignup_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  models.SignupRequest
	}{
		{name: "missing email", req: models.SignupRequest{Username: "alice", Password: "secret"}},
		{name: "malformed email", req: models.SignupRequest{Email: "nope", Username: "alice", Password: "secret"}},
		{name: "missing username", req: models.SignupRequest{Email: "alice@x.com", Password: "secret"}},
		{name: "missing password", req: models.SignupRequest{Email: "alice@x.com", Username: "alice"}},
	}

	// signupFn intentionally nil: reaching the service would panic the test.
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(jsonBody(t, tt.req)))
			rec := httptest.NewRecorder()

			h.signup(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// TestSignup_CredentialsTaken verifies that a duplicate email or username
// answers 403 with a body that does not name the colliding column.
func TestSignup_CredentialsTaken(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, _ models.SignupRequest) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(jsonBody(t, validSignup)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
	body := strings.TrimSpace(rec.Body.String())
	assert.Equal(t, "Credentials taken", body)
	assert.NotContains(t, body, "email")
	assert.NotContains(t, body, "username")
}

// TestSignup_ServiceFailure verifies that unexpected service errors map
// to 500 without leaking internals.
func TestSignup_ServiceFailure(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, _ models.SignupRequest) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(jsonBody(t, validSignup)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db is down")
}

// TestSignup_TokenCreationFailure verifies the 500 path after a successful
// account creation.
func TestSignup_TokenCreationFailure(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, req models.SignupRequest) (models.User, error) {
			return models.User{UserID: 1, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(jsonBody(t, validSignup)))
	rec := httptest.NewRecorder()

	h.signup(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestLogin_Success verifies that valid credentials result in 200 OK and a
// JSON body carrying the issued access token.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.User, error) {
			return models.User{UserID: 1, Email: req.Email}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newTestHandler(t, auth, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, validLogin)))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AccessTokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.AccessToken)
}

// TestLogin_IncorrectCredentials verifies that an unknown email and a wrong
// password produce byte-identical 403 responses.
func TestLogin_IncorrectCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, auth, nil, nil)

	responses := make([]*httptest.ResponseRecorder, 2)
	for i, body := range []models.LoginRequest{
		{Email: "ghost@x.com", Password: "whatever"},
		{Email: "alice@x.com", Password: "wrong"},
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, body)))
		rec := httptest.NewRecorder()
		h.login(rec, req)
		responses[i] = rec
	}

	require.Equal(t, http.StatusForbidden, responses[0].Code)
	require.Equal(t, http.StatusForbidden, responses[1].Code)
	assert.Equal(t, responses[0].Body.String(), responses[1].Body.String())
	assert.Equal(t, "Incorrect credentials", strings.TrimSpace(responses[0].Body.String()))
}

// TestLogin_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("not json at all"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestLogin_ValidationFailures exercises the body validation performed
// before the service is ever called.
func TestLogin_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		req  models.LoginRequest
	}{
		{name: "missing email", req: models.LoginRequest{Password: "secret"}},
		{name: "malformed email", req: models.LoginRequest{Email: "nope", Password: "secret"}},
		{name: "missing password", req: models.LoginRequest{Email: "alice@x.com"}},
	}

	h := newTestHandler(t, &mockAuthService{}, nil, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(jsonBody(t, tt.req)))
			rec := httptest.NewRecorder()

			h.login(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
