// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"marks/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateBookmarkInput defines the data required to create a bookmark.
// A nil Link creates a bookmark without a URL.
type CreateBookmarkInput struct {
	Title       string
	Description string
	Link        *string
}

// UpdateBookmarkInput carries a partial bookmark update. Nil pointer fields
// are left untouched; Link uses Optional so an explicit null clears the URL.
type UpdateBookmarkInput struct {
	Title       *string
	Description *string
	Link        Optional[string]
}

// ListBookmarksInput pages and filters a bookmark listing. Page and Limit are
// 1-based; zero values fall back to defaults.
type ListBookmarksInput struct {
	Search string
	Page   int
	Limit  int
}

// --- Output DTOs ---

// BookmarkListOutput is one page of a bookmark listing plus paging metadata.
type BookmarkListOutput struct {
	Data       []*entity.Bookmark
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// BookmarkUsecase defines the interface for bookmark business operations.
// Every operation takes the authenticated owner's ID and enforces ownership.
type BookmarkUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, input *CreateBookmarkInput) (*entity.Bookmark, error)
	FindOne(ctx context.Context, ownerID, bookmarkID uuid.UUID) (*entity.Bookmark, error)
	Update(ctx context.Context, ownerID, bookmarkID uuid.UUID, input *UpdateBookmarkInput) (*entity.Bookmark, error)
	Remove(ctx context.Context, ownerID, bookmarkID uuid.UUID) error
	List(ctx context.Context, ownerID uuid.UUID, input *ListBookmarksInput) (*BookmarkListOutput, error)
	ShareQR(ctx context.Context, ownerID, bookmarkID uuid.UUID) ([]byte, error)
}
