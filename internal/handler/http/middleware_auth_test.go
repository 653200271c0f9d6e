package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minhtran241/bookmarks-api/internal/service"
	"github.com/minhtran241/bookmarks-api/internal/utils"
	"github.com/minhtran241/bookmarks-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// guardProbe wraps h.auth around a handler that records whether it ran and
// what identity it saw in the context.
func guardProbe(h *Handler) (http.Handler, *struct {
	called bool
	userID int64
	user   models.User
}) {
	seen := &struct {
		called bool
		userID int64
		user   models.User
	}{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.called = true
		seen.userID, _ = utils.GetUserIDFromContext(r.Context())
		seen.user, _ = utils.GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	return h.auth(next), seen
}

func TestAuthMiddleware_Success(t *testing.T) {
	h := newTestHandler(t, authedMock(testUser), nil, nil)
	guarded, seen := guardProbe(h)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer some.valid.token")
	rec := httptest.NewRecorder()

	guarded.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, seen.called)
	assert.Equal(t, testUser.UserID, seen.userID)
	assert.Equal(t, testUser, seen.user)
}

// TestAuthMiddleware_UniformRejection verifies that every rejection cause
// produces the same bare 401 body, so a caller cannot tell a missing header
// from a bad signature from a deleted account.
func TestAuthMiddleware_UniformRejection(t *testing.T) {
	deletedAccount := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 99}, nil
		},
		resolveUserFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	tests := []struct {
		name   string
		auth   service.AuthService
		header string
	}{
		{name: "missing header", auth: &mockAuthService{}},
		{name: "scheme only", auth: &mockAuthService{}, header: "Bearer"},
		{name: "empty token", auth: &mockAuthService{}, header: "Bearer "},
		{name: "invalid token", auth: &mockAuthService{}, header: "Bearer bad.token"},
		{name: "valid token for deleted account", auth: deletedAccount, header: "Bearer some.valid.token"},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.auth, nil, nil)
			guarded, seen := guardProbe(h)

			req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			guarded.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, seen.called)
			bodies = append(bodies, strings.TrimSpace(rec.Body.String()))
		})
	}

	for i := 1; i < len(bodies); i++ {
		assert.Equal(t, bodies[0], bodies[i])
	}
}
