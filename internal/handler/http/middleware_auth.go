package http

import (
	"context"
	"net/http"

	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], resolves the token
// subject to an account via [service.AuthService.ResolveUser], and — on
// success — stores the authenticated user's ID and record in the request
// context under [utils.UserIDCtxKey] and [utils.UserCtxKey] before delegating
// to the next handler.
//
// Every rejection — missing header, malformed header, bad signature, expired
// token, or a subject with no account — answers the same bare
// 401 Unauthorized, so the response does not tell a probing caller which
// check failed. The specific cause still reaches the log through the
// context-scoped logger obtained via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Error().Msg("empty `Authorization` header")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Msg("invalid `Authorization` header")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()

		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		user, err := h.services.AuthService.ResolveUser(ctx, token.UserID)
		if err != nil {
			log.Err(err).Msg("error occurred during resolving token subject")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated identity in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
