// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is a saved record owned by exactly one user. Only the owner may
// read, update or delete it.
type Bookmark struct {
	ID          uuid.UUID // The unique identifier for the bookmark.
	UserID      uuid.UUID // The owning user's ID.
	Title       string    // Required, non-empty title.
	Description string    // Optional free-form description.
	Link        *string   // Optional URL; nil when the bookmark has no link.
	Owner       *User     // The owning user, populated when the repository preloads it.
	CreatedAt   time.Time // Timestamp of when this bookmark was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
