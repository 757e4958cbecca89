// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"marks/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookmarkNotFound is returned when a bookmark does not exist.
var ErrBookmarkNotFound = errors.New("bookmark not found")

// BookmarkSearchFilter narrows and pages a bookmark listing. Offset and Limit
// are absolute values; the usecase layer computes them from page/limit inputs.
type BookmarkSearchFilter struct {
	// Search, when non-empty, matches case-insensitively against title OR
	// description as a substring.
	Search string
	Offset int
	Limit  int
}

// BookmarkRepository defines the standard operations for bookmark persistence.
type BookmarkRepository interface {
	// Create persists a new bookmark and reloads it with the owner attached.
	Create(ctx context.Context, bookmark *entity.Bookmark) error

	// FindByID retrieves a single bookmark by its unique ID with the owner preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error)

	// Update persists the current state of an existing bookmark, including
	// explicit nil fields such as a cleared link.
	Update(ctx context.Context, bookmark *entity.Bookmark) error

	// Delete removes a bookmark by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByOwner lists the owner's bookmarks matching the filter, newest
	// first, and returns the total number of matches across all pages.
	FindByOwner(ctx context.Context, ownerID uuid.UUID, filter BookmarkSearchFilter) ([]*entity.Bookmark, int64, error)
}
