package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/minhtran241/bookmarks-api/models"
)

const (
	FieldEmail       = "email"
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldLink        = "link"
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
)

// RequestValidator enforces structural rules over the API request bodies:
// required fields are present and non-blank, emails parse as addresses,
// partial updates carry at least one field.
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignupRequest(ctx, value, fields...)
	case *models.SignupRequest:
		return v.validateSignupRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.CreateBookmarkRequest:
		return v.validateCreateBookmarkRequest(ctx, value, fields...)
	case *models.CreateBookmarkRequest:
		return v.validateCreateBookmarkRequest(ctx, *value, fields...)

	case models.EditBookmarkRequest:
		return v.validateEditBookmarkRequest(ctx, value)
	case *models.EditBookmarkRequest:
		return v.validateEditBookmarkRequest(ctx, *value)

	case models.EditUserRequest:
		return v.validateEditUserRequest(ctx, value)
	case *models.EditUserRequest:
		return v.validateEditUserRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

func (v *RequestValidator) validateSignupRequest(_ context.Context, req models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(req.Email) {
				return ErrEmptyEmail
			}
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldUsername:
			if isBlank(req.Username) {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLoginRequest(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(req.Email) {
				return ErrEmptyEmail
			}
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateCreateBookmarkRequest(_ context.Context, req models.CreateBookmarkRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldLink}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(req.Title) {
				return ErrEmptyTitle
			}
		case FieldLink:
			if isBlank(req.Link) {
				return ErrEmptyLink
			}
		case FieldDescription:
			// description is optional, nothing to enforce
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEditBookmarkRequest checks that the partial update carries at least
// one field and that provided required fields are not blanked out.
func (v *RequestValidator) validateEditBookmarkRequest(_ context.Context, req models.EditBookmarkRequest) error {
	if req.Title == nil && req.Description == nil && req.Link == nil {
		return ErrNoFieldsToUpdate
	}

	if req.Title != nil && isBlank(*req.Title) {
		return ErrEmptyTitle
	}
	if req.Link != nil && isBlank(*req.Link) {
		return ErrEmptyLink
	}

	return nil
}

// validateEditUserRequest mirrors validateEditBookmarkRequest for profile
// edits. An email, when provided, must parse as an address; username must not
// be blanked out.
func (v *RequestValidator) validateEditUserRequest(_ context.Context, req models.EditUserRequest) error {
	if req.Email == nil && req.Username == nil && req.FirstName == nil && req.LastName == nil {
		return ErrNoFieldsToUpdate
	}

	if req.Email != nil {
		if isBlank(*req.Email) {
			return ErrEmptyEmail
		}
		if !isValidEmail(*req.Email) {
			return ErrInvalidEmail
		}
	}
	if req.Username != nil && isBlank(*req.Username) {
		return ErrEmptyUsername
	}

	return nil
}
