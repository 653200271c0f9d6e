// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Minh Tran

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minhtran241/bookmarks-api/internal/config"
	"github.com/minhtran241/bookmarks-api/internal/logger"
	"github.com/minhtran241/bookmarks-api/internal/store"
	"github.com/minhtran241/bookmarks-api/internal/utils"
	"github.com/minhtran241/bookmarks-api/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and Argon2id for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration(),
		logger:         logger,
	}
}

// Signup creates a new user account.
//
// The plain-text password never reaches the repository: it is hashed with
// Argon2id before the account row is written. The profile slug is derived
// from the username.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Email, Username or Password is empty.
//   - store.ErrUserAlreadyExists (wrapped) when the email or username is taken.
func (a *authService) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Username == "" || req.Password == "" {
		log.Error().Str("func", "*authService.Signup").Msg("invalid signup data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Email:    req.Email,
		Username: req.Username,
		Slug:     utils.Slugify(req.Username),
		Hash:     hash,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Signup").Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by email and verifies the supplied password against
// the stored Argon2id hash. An unknown email and a wrong password both report
// ErrInvalidCredentials, so the response never discloses whether the account
// exists.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("func", "*authService.Login").Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("func", "*authService.Login").Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.VerifyPassword(foundUser.Hash, req.Password)
	if err != nil {
		log.Err(err).
			Str("func", "*authService.Login").
			Int64("user_id", foundUser.UserID).
			Msg("stored password hash could not be verified")
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}
	if !ok {
		log.Warn().
			Str("func", "*authService.Login").
			Int64("user_id", foundUser.UserID).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim and the user's email in a custom claim, and
// expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveUser loads the account record behind a verified token subject.
// A token whose subject no longer maps to an account is as good as an
// invalid token, so the missing-user case is normalised too.
func (a *authService) ResolveUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("func", "*authService.ResolveUser").Int64("user_id", userID).Msg("token subject has no account")
			return models.User{}, ErrTokenIsExpiredOrInvalid
		}
		log.Err(err).Str("func", "*authService.ResolveUser").Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}
