package models

import "time"

// AccessTokenResponse is the body returned by signup and login.
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// UserResponse is the outward projection of a user account. It intentionally
// has no hash field at all, so the credential digest can never leak through
// serialization.
type UserResponse struct {
	UserID    int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Slug      string    `json:"slug"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
