// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Minh Tran

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when creating or editing a user
	// collides with an existing email or username. The error deliberately
	// does not say which field collided.
	ErrUserAlreadyExists = errors.New("credentials already taken")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBookmarkNotFound is returned when a bookmark does not exist for the
	// given owner. A bookmark owned by a different user produces the same
	// error, so non-owners cannot probe for record existence.
	ErrBookmarkNotFound = errors.New("bookmark was not found")

	// ErrEmptyUpdate is returned when a partial update carries no fields.
	ErrEmptyUpdate = errors.New("update carries no fields")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
