// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// slug derivation, HTTP response writing, JWT token generation and validation.
package utils

import (
	"context"

	"github.com/minhtran241/bookmarks-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user's identifier
// in the request context. Written by the auth middleware, read by handlers
// via GetUserIDFromContext.
var UserIDCtxKey = contextKey("userID")

// UserCtxKey is the key used to store the full resolved user record in the
// request context. The record is the one the auth middleware looked up for
// the token's subject; handlers that need more than the ID (e.g. the
// username for slug derivation) read it via GetUserFromContext.
var UserCtxKey = contextKey("user")

// GetUserIDFromContext retrieves the authenticated user's identifier from
// the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetUserFromContext retrieves the resolved user record from the context.
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
