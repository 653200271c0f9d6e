package models

import "time"

// Bookmark is a user-owned record pointing at an external link. Ownership is
// established once at creation time via UserID and never changes afterwards;
// every repository operation over bookmarks is filtered by the owner.
type Bookmark struct {
	// BookmarkID is the internal unique identifier of the bookmark.
	BookmarkID int64 `json:"id"`

	// UserID references the owning user. It is excluded from JSON because
	// callers only ever see their own records.
	UserID int64 `json:"-"`

	// Title is the display name of the bookmark.
	Title string `json:"title"`

	// Description is an optional free-form note.
	Description string `json:"description,omitempty"`

	// Link is the bookmarked URI.
	Link string `json:"link"`

	// Slug is a URL-safe identifier derived from the owner's username and
	// the bookmark title. Recomputed whenever the title changes.
	Slug string `json:"slug"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Bookmark model.
func (b Bookmark) TableName() string {
	return "bookmarks"
}

// BookmarkUpdate describes a partial edit of a bookmark. Nil fields are left
// untouched by the repository's dynamically built UPDATE.
type BookmarkUpdate struct {
	Title       *string
	Description *string
	Link        *string
	Slug        *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u BookmarkUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Link == nil && u.Slug == nil
}
