package handler

import (
	"time"

	"marks/internal/domain/entity"
	"marks/internal/usecase"

	"github.com/google/uuid"
)

// --- Request DTOs ---

// SignUpRequest is the payload for account registration.
type SignUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// SignInRequest is the payload for authentication.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EditUserRequest is the payload for a partial profile update.
type EditUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	Name     *string `json:"name"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

// CreateBookmarkRequest is the payload for creating a bookmark.
type CreateBookmarkRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Link        *string `json:"link" validate:"omitempty,url"`
}

// UpdateBookmarkRequest is the payload for a partial bookmark update. Link is
// tri-state: absent leaves it alone, null clears it, a value replaces it.
type UpdateBookmarkRequest struct {
	Title       *string                  `json:"title" validate:"omitempty,min=1"`
	Description *string                  `json:"description"`
	Link        usecase.Optional[string] `json:"link"`
}

// ListBookmarksRequest holds the query parameters for the bookmark listing.
type ListBookmarksRequest struct {
	Search string `query:"search"`
	Page   int    `query:"page" validate:"omitempty,min=1"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

// --- Response DTOs ---

// UserResponse is the public shape of a user. It never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SignInResponse carries the access token issued on successful signin.
type SignInResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

// BookmarkResponse is the public shape of a bookmark.
type BookmarkResponse struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"userId"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Link        *string       `json:"link"`
	Owner       *UserResponse `json:"owner,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// BookmarkListResponse is one page of bookmarks plus paging metadata.
type BookmarkListResponse struct {
	Data       []BookmarkResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"totalPages"`
}

// --- Mappers ---

func toUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toBookmarkResponse(bookmark *entity.Bookmark) BookmarkResponse {
	resp := BookmarkResponse{
		ID:          bookmark.ID,
		UserID:      bookmark.UserID,
		Title:       bookmark.Title,
		Description: bookmark.Description,
		Link:        bookmark.Link,
		CreatedAt:   bookmark.CreatedAt,
		UpdatedAt:   bookmark.UpdatedAt,
	}
	if bookmark.Owner != nil {
		owner := toUserResponse(bookmark.Owner)
		resp.Owner = &owner
	}

	return resp
}

func toBookmarkListResponse(output *usecase.BookmarkListOutput) BookmarkListResponse {
	data := make([]BookmarkResponse, 0, len(output.Data))
	for _, bookmark := range output.Data {
		data = append(data, toBookmarkResponse(bookmark))
	}

	return BookmarkListResponse{
		Data:       data,
		Total:      output.Total,
		Page:       output.Page,
		Limit:      output.Limit,
		TotalPages: output.TotalPages,
	}
}
