// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Minh Tran

package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters used for password hashing, following OWASP
// recommendations for password storage. The parameters are embedded in every
// produced hash string, so they can be tuned later without invalidating
// existing credentials.
const (
	argonMemory      uint32 = 64 * 1024 // 64 MiB
	argonIterations  uint32 = 3
	argonParallelism uint8  = 2
	argonSaltLength  uint32 = 16
	argonKeyLength   uint32 = 32
)

// ErrMalformedHash is returned by VerifyPassword when the stored hash string
// cannot be decoded as an Argon2id PHC string.
var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword derives an Argon2id digest of the given plaintext password
// with a fresh random salt.
//
// The output is a self-describing PHC string of the form
//
//	$argon2id$v=19$m=65536,t=3,p=2$<base64 salt>$<base64 key>
//
// so no separate salt storage is needed. The only error condition is a
// failure to read random bytes for the salt.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	key := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonIterations,
		argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// Argon2id hash.
//
// A non-matching password is not an error: the function returns (false, nil).
// An error is returned only when the stored hash itself cannot be decoded,
// which indicates data corruption rather than a bad credential.
func VerifyPassword(encodedHash, password string) (bool, error) {
	salt, key, memory, iterations, parallelism, err := decodeArgon2Hash(encodedHash)
	if err != nil {
		return false, err
	}

	otherKey := argon2.IDKey([]byte(password), salt, iterations, memory, parallelism, uint32(len(key)))

	// constant-time comparison
	return subtle.ConstantTimeCompare(key, otherKey) == 1, nil
}

// decodeArgon2Hash parses an Argon2id PHC string into its salt, derived key
// and cost parameters.
func decodeArgon2Hash(encodedHash string) (salt, key []byte, memory, iterations uint32, parallelism uint8, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	var version int
	if _, scanErr := fmt.Sscanf(parts[2], "v=%d", &version); scanErr != nil || version != argon2.Version {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	if _, scanErr := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &iterations, &parallelism); scanErr != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	key, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, 0, 0, 0, ErrMalformedHash
	}

	return salt, key, memory, iterations, parallelism, nil
}
