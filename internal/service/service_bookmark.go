package service

import (
	"context"
	"fmt"

	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/internal/store"
	"github.com/minhtran241/bookmarks-api/internal/utils"
	"github.com/minhtran241/bookmarks-api/models"
)

// bookmarkService is the concrete implementation of BookmarkService.
//
// Ownership is enforced one layer down: the repository scopes every statement
// to the owner's user_id, so this service only has to thread the
// authenticated identity through. Bookmark slugs combine the owner's username
// with the title, which keeps them readable and unique enough per user.
type bookmarkService struct {
	bookmarkRepository store.BookmarkRepository
	logger             *logger.Logger
}

// NewBookmarkService constructs a BookmarkService backed by the given
// repository.
func NewBookmarkService(bookmarkRepository store.BookmarkRepository, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		bookmarkRepository: bookmarkRepository,
		logger:             logger,
	}
}

// CreateBookmark persists a new bookmark owned by owner. The slug is derived
// from the owner's username and the bookmark title.
func (s *bookmarkService) CreateBookmark(ctx context.Context, owner models.User, req models.CreateBookmarkRequest) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if req.Title == "" || req.Link == "" {
		log.Error().Str("func", "*bookmarkService.CreateBookmark").Msg("invalid bookmark data provided")
		return models.Bookmark{}, ErrInvalidDataProvided
	}

	bookmark := models.Bookmark{
		UserID:      owner.UserID,
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Slug:        utils.Slugify(owner.Username + " " + req.Title),
	}

	created, err := s.bookmarkRepository.CreateBookmark(ctx, bookmark)
	if err != nil {
		log.Err(err).
			Str("func", "*bookmarkService.CreateBookmark").
			Int64("user_id", owner.UserID).
			Msg("bookmark creation ended with error")
		return models.Bookmark{}, fmt.Errorf("bookmark creation ended with error: %w", err)
	}

	return created, nil
}

// GetBookmark retrieves a single bookmark owned by userID. A bookmark that
// exists but belongs to another user surfaces as store.ErrBookmarkNotFound.
func (s *bookmarkService) GetBookmark(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	found, err := s.bookmarkRepository.GetBookmarkByID(ctx, userID, bookmarkID)
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("bookmark lookup ended with error: %w", err)
	}

	return found, nil
}

// ListBookmarks retrieves all bookmarks owned by userID, oldest first.
func (s *bookmarkService) ListBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	bookmarks, err := s.bookmarkRepository.GetAllBookmarks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("bookmark listing ended with error: %w", err)
	}

	return bookmarks, nil
}

// EditBookmark applies a partial edit to a bookmark owned by owner. When the
// title changes, the slug is recomputed from the owner's username and the new
// title.
func (s *bookmarkService) EditBookmark(ctx context.Context, owner models.User, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	upd := models.BookmarkUpdate{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	}
	if req.Title != nil {
		slug := utils.Slugify(owner.Username + " " + *req.Title)
		upd.Slug = &slug
	}

	updated, err := s.bookmarkRepository.UpdateBookmark(ctx, owner.UserID, bookmarkID, upd)
	if err != nil {
		log.Err(err).
			Str("func", "*bookmarkService.EditBookmark").
			Int64("user_id", owner.UserID).
			Int64("bookmark_id", bookmarkID).
			Msg("bookmark update ended with error")
		return models.Bookmark{}, fmt.Errorf("bookmark update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteBookmark removes a bookmark owned by userID. Deleting an absent or
// foreign bookmark surfaces as store.ErrBookmarkNotFound.
func (s *bookmarkService) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error {
	if err := s.bookmarkRepository.DeleteBookmark(ctx, userID, bookmarkID); err != nil {
		return fmt.Errorf("bookmark deletion ended with error: %w", err)
	}

	return nil
}
