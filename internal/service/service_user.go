package service

import (
	"context"
	"fmt"

	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/internal/store"
	"github.com/minhtran241/bookmarks-api/internal/utils"
	"github.com/minhtran241/bookmarks-api/models"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// EditUser applies a partial profile edit for the authenticated user.
// A username change recomputes the profile slug. Taking a new email or
// username that collides with another account surfaces as
// store.ErrUserAlreadyExists.
func (s *userService) EditUser(ctx context.Context, userID int64, req models.EditUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	upd := models.UserUpdate{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if req.Username != nil {
		slug := utils.Slugify(*req.Username)
		upd.Slug = &slug
	}

	updated, err := s.userRepository.UpdateUser(ctx, userID, upd)
	if err != nil {
		log.Err(err).
			Str("func", "*userService.EditUser").
			Int64("user_id", userID).
			Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}
