package models

// SignupRequest is the body of POST /api/auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateBookmarkRequest is the body of POST /api/bookmarks.
type CreateBookmarkRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// EditBookmarkRequest is the body of PATCH /api/bookmarks/{id}.
// Nil fields are left unchanged.
type EditBookmarkRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
}

// EditUserRequest is the body of PATCH /api/users.
// Nil fields are left unchanged.
type EditUserRequest struct {
	Email     *string `json:"email"`
	Username  *string `json:"username"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}
