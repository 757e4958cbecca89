package postgres

import (
	"context"

	"marks/internal/domain/entity"
	domainerrors "marks/internal/domain/errors"
	"marks/internal/domain/repository"
	"marks/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// bookmarkRepository implements the domain.BookmarkRepository interface using GORM.
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// Create persists a new bookmark and reloads it with the owner attached.
func (repo *bookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Create(bookmarkM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "bookmark references unknown user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required bookmark information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create bookmark")
	}

	// Reload with the owner so responses can embed it without a second query.
	var created model.BookmarkModel
	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", bookmarkM.ID).
		First(&created).Error; err != nil {
		return errors.Wrap(err, "failed to reload created bookmark")
	}

	*bookmark = *toBookmarkDomain(&created)

	return nil
}

// FindByID retrieves a single bookmark by its unique ID with the owner preloaded.
func (repo *bookmarkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error) {
	var bookmarkM model.BookmarkModel
	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&bookmarkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find bookmark by id")
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// Update persists the current state of an existing bookmark. Save writes every
// column, so a link cleared to nil is persisted as NULL rather than skipped.
func (repo *bookmarkRepository) Update(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Save(bookmarkM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required bookmark information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update bookmark")
	}

	bookmark.UpdatedAt = bookmarkM.UpdatedAt

	return nil
}

// Delete removes a bookmark by its ID.
func (repo *bookmarkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookmarkModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete bookmark")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	return nil
}

// FindByOwner lists the owner's bookmarks matching the filter, newest first,
// and returns the total number of matches across all pages.
func (repo *bookmarkRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID, filter repository.BookmarkSearchFilter) ([]*entity.Bookmark, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BookmarkModel{}).
		Where("user_id = ?", ownerID)

	if filter.Search != "" {
		// ILIKE gives the case-insensitive substring match; the pattern wraps
		// the term so it matches anywhere in the title or description.
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count bookmarks")
	}

	var bookmarkMs []*model.BookmarkModel
	if err := query.
		Preload("Owner").
		Order("created_at DESC, id ASC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&bookmarkMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list bookmarks")
	}

	bookmarks := make([]*entity.Bookmark, 0, len(bookmarkMs))
	for _, bookmarkM := range bookmarkMs {
		bookmarks = append(bookmarks, toBookmarkDomain(bookmarkM))
	}

	return bookmarks, total, nil
}

// toBookmarkDomain converts a GORM BookmarkModel to a domain Bookmark entity.
func toBookmarkDomain(data *model.BookmarkModel) *entity.Bookmark {
	if data == nil {
		return nil
	}

	return &entity.Bookmark{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Link:        data.Link,
		Owner:       toUserDomain(data.Owner),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromBookmarkDomain converts a domain Bookmark entity to a GORM BookmarkModel.
// The Owner association is deliberately not mapped so writes never touch users.
func fromBookmarkDomain(data *entity.Bookmark) *model.BookmarkModel {
	if data == nil {
		return nil
	}

	return &model.BookmarkModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		Description: data.Description,
		Link:        data.Link,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
