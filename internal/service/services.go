package service

import (
	"github.com/minhtran241/bookmarks-api/internal/config"
	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/internal/store"
)

type Services struct {
	AuthService     AuthService
	BookmarkService BookmarkService
	UserService     UserService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		BookmarkService: NewBookmarkService(storages.BookmarkRepository, logger),
		UserService:     NewUserService(storages.UserRepository, logger),
	}
}
