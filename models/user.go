package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the unique address the user logs in with.
	Email string `json:"email"`

	// Username is the unique human-readable account name.
	Username string `json:"username"`

	// Slug is the lowercased, hyphenated form of Username used as a
	// secondary URL-safe identifier.
	Slug string `json:"slug"`

	// Hash stores the Argon2id digest of the user's password in PHC string
	// form. This value MUST be a derived value, never plaintext, and is
	// write-only from the API's perspective.
	Hash string `json:"-"`

	// FirstName is an optional profile field.
	FirstName string `json:"first_name,omitempty"`

	// LastName is an optional profile field.
	LastName string `json:"last_name,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial edit of a user profile. Nil fields are left
// untouched by the repository's dynamically built UPDATE.
type UserUpdate struct {
	Email     *string
	Username  *string
	Slug      *string
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Username == nil && u.Slug == nil &&
		u.FirstName == nil && u.LastName == nil
}

// Response projects the user into its API representation. The projection
// never carries the password hash, so a full record can be handed to the
// transport layer without field scrubbing.
func (u User) Response() UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		Username:  u.Username,
		Slug:      u.Slug,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
