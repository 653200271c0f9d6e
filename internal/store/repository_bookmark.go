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

// bookmarkColumns is the canonical column order for scanning bookmark rows.
var bookmarkColumns = []string{
	"bookmark_id", "user_id", "title", "description", "link", "slug",
	"created_at", "updated_at",
}

// bookmarkRepository is the SQL-backed implementation of [BookmarkRepository].
// Every statement it issues carries a user_id predicate, so a record owned by
// a different user is indistinguishable from a missing one. That single
// property is what makes the 404-on-foreign-record policy hold across all
// operations.
type bookmarkRepository struct {
	*DB
	logger *logger.Logger
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by the
// provided database connection and logger.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateBookmark persists a new bookmark owned by bookmark.UserID and returns
// the record with server-assigned fields populated.
func (r *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(bookmark.TableName()).
		Columns("user_id", "title", "description", "link", "slug").
		Values(bookmark.UserID, bookmark.Title, bookmark.Description, bookmark.Link, bookmark.Slug).
		Suffix("RETURNING " + strings.Join(bookmarkColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Msg("error: building query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanBookmarkRow(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*bookmarkRepository.CreateBookmark").
			Int64("user_id", bookmark.UserID).
			Msg("error: creating bookmark")
		return models.Bookmark{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// GetBookmarkByID retrieves a single bookmark by identifier, scoped to the
// given owner. Returns [ErrBookmarkNotFound] when no row matches — whether
// the bookmark is absent or owned by someone else.
func (r *bookmarkRepository) GetBookmarkByID(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(bookmarkColumns...).
		From(models.Bookmark{}.TableName()).
		Where(sq.Eq{"bookmark_id": bookmarkID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.GetBookmarkByID").Msg("error: building query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanBookmarkRow(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}
		log.Err(err).
			Str("func", "*bookmarkRepository.GetBookmarkByID").
			Int64("user_id", userID).
			Int64("bookmark_id", bookmarkID).
			Msg("error: scanning bookmark row")
		return models.Bookmark{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetAllBookmarks retrieves every bookmark owned by the given user, oldest
// first. Returns an empty slice when the user has no bookmarks.
func (r *bookmarkRepository) GetAllBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(bookmarkColumns...).
		From(models.Bookmark{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("bookmark_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.GetAllBookmarks").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*bookmarkRepository.GetAllBookmarks").
			Int64("user_id", userID).
			Msg("failed to execute query for listing bookmarks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0, 16)

	for rows.Next() {
		var b models.Bookmark
		scanErr := rows.Scan(
			&b.BookmarkID,
			&b.UserID,
			&b.Title,
			&b.Description,
			&b.Link,
			&b.Slug,
			&b.CreatedAt,
			&b.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*bookmarkRepository.GetAllBookmarks").
				Int64("user_id", userID).
				Msg("failed to scan bookmark row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		bookmarks = append(bookmarks, b)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*bookmarkRepository.GetAllBookmarks").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return bookmarks, nil
}

// UpdateBookmark applies a partial edit via a dynamically built UPDATE and
// returns the updated record. Only non-nil fields of upd enter the SET
// clause; updated_at is always advanced. The WHERE clause carries both the
// bookmark id and the owner id, so edits to foreign records report
// [ErrBookmarkNotFound].
func (r *bookmarkRepository) UpdateBookmark(ctx context.Context, userID, bookmarkID int64, upd models.BookmarkUpdate) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if upd.IsEmpty() {
		return models.Bookmark{}, ErrEmptyUpdate
	}

	qb := r.builder.Update(models.Bookmark{}.TableName())
	if upd.Title != nil {
		qb = qb.Set("title", *upd.Title)
	}
	if upd.Description != nil {
		qb = qb.Set("description", *upd.Description)
	}
	if upd.Link != nil {
		qb = qb.Set("link", *upd.Link)
	}
	if upd.Slug != nil {
		qb = qb.Set("slug", *upd.Slug)
	}

	query, args, err := qb.
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"bookmark_id": bookmarkID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(bookmarkColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.UpdateBookmark").Msg("error: building query")
		return models.Bookmark{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanBookmarkRow(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}
		log.Err(err).
			Str("func", "*bookmarkRepository.UpdateBookmark").
			Int64("user_id", userID).
			Int64("bookmark_id", bookmarkID).
			Msg("error: updating bookmark")
		return models.Bookmark{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

// DeleteBookmark removes a bookmark scoped to the given owner. Deleting an
// absent or foreign record reports [ErrBookmarkNotFound].
func (r *bookmarkRepository) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(models.Bookmark{}.TableName()).
		Where(sq.Eq{"bookmark_id": bookmarkID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.DeleteBookmark").Msg("error: building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*bookmarkRepository.DeleteBookmark").
			Int64("user_id", userID).
			Int64("bookmark_id", bookmarkID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}

// scanBookmarkRow scans a single bookmark row in [bookmarkColumns] order.
func scanBookmarkRow(row *sql.Row) (models.Bookmark, error) {
	var b models.Bookmark
	err := row.Scan(
		&b.BookmarkID,
		&b.UserID,
		&b.Title,
		&b.Description,
		&b.Link,
		&b.Slug,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return models.Bookmark{}, err
	}

	return b, nil
}
