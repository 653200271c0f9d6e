package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so a login failure never reveals which one it was.
	ErrInvalidCredentials = errors.New("incorrect credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
