package store

import "github.com/minhtran241/bookmarks-api/internal/logger"

// Storages bundles every repository the service layer consumes.
type Storages struct {
	UserRepository     UserRepository
	BookmarkRepository BookmarkRepository
}

// NewStorages wires all repositories to the given database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		BookmarkRepository: NewBookmarkRepository(db, logger),
	}
}
