package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every access token issued by the
// service. On top of the registered claims (iss, sub, iat, exp) it embeds the
// account email so that downstream consumers can identify the caller without
// a database round-trip.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the address of the account the token was issued for.
	Email string `json:"email"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// stored on the client side.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to
// int64. It is populated during issuance and parsing to avoid repeated
// string-to-int conversions.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded claim set of the token.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" claim,
// parses it as a base-10 int64, and returns the result.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
