package http

import (
	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/internal/service"
	"github.com/minhtran241/bookmarks-api/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	version   string

	logger *logger.Logger
}

func NewHandler(services *service.Services, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewRequestValidator(),
		version:   version,
		logger:    logger,
	}
}
