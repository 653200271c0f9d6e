package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/models"
)

// userColumns is the canonical column order for scanning user rows. Every
// query over the users table selects (or RETURNINGs) exactly this set.
var userColumns = []string{
	"user_id", "email", "username", "slug", "hash",
	"first_name", "last_name", "created_at", "updated_at",
}

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup and profile edits against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - UNIQUE constraint violation (email or username) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(user.TableName()).
		Columns("email", "username", "slug", "hash", "first_name", "last_name").
		Values(user.Email, user.Username, user.Slug, user.Hash, user.FirstName, user.LastName).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.QueryRowContext(ctx, query, args...)
	created, err := scanUserRow(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error: creating user")

		if r.classifier.IsUniqueViolation(err) {
			return models.User{}, ErrUserAlreadyExists
		}
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user record registered under the given email.
//
// Error handling:
//   - Empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanUserRow(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindUserByID retrieves the user record with the given identifier.
//
// Error handling mirrors [userRepository.FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanUserRow(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByID").Int64("user_id", userID).Msg("error: scanning user row")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateUser applies a partial profile edit via a dynamically built UPDATE
// and returns the updated record. Only non-nil fields of upd enter the SET
// clause; updated_at is always advanced.
//
// Error handling:
//   - Empty update → [ErrEmptyUpdate].
//   - Target account missing → [ErrNoUserWasFound].
//   - UNIQUE constraint violation → [ErrUserAlreadyExists].
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, upd models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if upd.IsEmpty() {
		return models.User{}, ErrEmptyUpdate
	}

	qb := r.builder.Update(models.User{}.TableName())
	if upd.Email != nil {
		qb = qb.Set("email", *upd.Email)
	}
	if upd.Username != nil {
		qb = qb.Set("username", *upd.Username)
	}
	if upd.Slug != nil {
		qb = qb.Set("slug", *upd.Slug)
	}
	if upd.FirstName != nil {
		qb = qb.Set("first_name", *upd.FirstName)
	}
	if upd.LastName != nil {
		qb = qb.Set("last_name", *upd.LastName)
	}

	query, args, err := qb.
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUserRow(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Int64("user_id", userID).Msg("error: updating user")

		switch {
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrNoUserWasFound
		case r.classifier.IsUniqueViolation(err):
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// scanUserRow scans a single user row in [userColumns] order.
func scanUserRow(row *sql.Row) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID,
		&u.Email,
		&u.Username,
		&u.Slug,
		&u.Hash,
		&u.FirstName,
		&u.LastName,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	return u, nil
}
