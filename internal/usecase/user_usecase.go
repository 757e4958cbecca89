// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"marks/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for profile-related business operations.
type UserUsecase interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	EditUser(ctx context.Context, userID uuid.UUID, input *EditUserInput) (*entity.User, error)
}

// --- Input DTOs ---

// EditUserInput defines the data required to update a user profile. Nil fields
// are left untouched.
type EditUserInput struct {
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
}
