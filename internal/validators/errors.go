package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("email is not a valid address")
	ErrEmptyUsername    = errors.New("username is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyLink        = errors.New("link is required")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
