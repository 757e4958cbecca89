package impl

import (
	"context"
	"log/slog"

	deliverycontext "marks/internal/delivery/context"
	"marks/internal/domain/entity"
	domainerrors "marks/internal/domain/errors"
	"marks/internal/domain/repository"
	"marks/internal/domain/service"
	"marks/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// bookmarkService implements the BookmarkUsecase interface.
type bookmarkService struct {
	bookmarkRepo  repository.BookmarkRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// BookmarkServiceParams holds dependencies for BookmarkService, injected by Fx.
type BookmarkServiceParams struct {
	fx.In

	BookmarkRepo  repository.BookmarkRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewBookmarkService creates a new bookmark service instance
func NewBookmarkService(params BookmarkServiceParams) usecase.BookmarkUsecase {
	return &bookmarkService{
		bookmarkRepo:  params.BookmarkRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *bookmarkService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// findOwnedBookmark loads a bookmark and enforces ownership. Existence is
// checked before ownership, so a bookmark belonging to someone else yields
// 403 rather than 404. Every per-bookmark operation goes through here so the
// two checks cannot drift apart.
func (srv *bookmarkService) findOwnedBookmark(ctx context.Context, ownerID, bookmarkID uuid.UUID) (*entity.Bookmark, error) {
	bookmark, err := srv.bookmarkRepo.FindByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "bookmark not found")
		}

		return nil, errors.Wrap(err, "failed to find bookmark")
	}

	if bookmark.UserID != ownerID {
		srv.log(ctx).Warn("Ownership check failed",
			slog.Any("bookmarkID", bookmarkID),
			slog.Any("requesterID", ownerID),
		)

		return nil, errors.Wrap(domainerrors.ErrForbidden, "bookmark belongs to another user")
	}

	return bookmark, nil
}

// Create stores a new bookmark for the owner.
func (srv *bookmarkService) Create(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateBookmarkInput) (*entity.Bookmark, error) {
	bookmark := &entity.Bookmark{
		UserID:      ownerID,
		Title:       input.Title,
		Description: input.Description,
		Link:        input.Link,
	}

	if err := srv.bookmarkRepo.Create(ctx, bookmark); err != nil {
		return nil, errors.Wrap(err, "failed to create bookmark")
	}

	srv.log(ctx).Debug("Bookmark created", slog.Any("bookmarkID", bookmark.ID), slog.Any("ownerID", ownerID))

	return bookmark, nil
}

// FindOne retrieves a single bookmark owned by the requester.
func (srv *bookmarkService) FindOne(ctx context.Context, ownerID, bookmarkID uuid.UUID) (*entity.Bookmark, error) {
	return srv.findOwnedBookmark(ctx, ownerID, bookmarkID)
}

// Update applies a partial update to an owned bookmark. Title and Description
// follow pointer semantics; Link uses Optional so an explicit null clears it.
func (srv *bookmarkService) Update(ctx context.Context, ownerID, bookmarkID uuid.UUID, input *usecase.UpdateBookmarkInput) (*entity.Bookmark, error) {
	bookmark, err := srv.findOwnedBookmark(ctx, ownerID, bookmarkID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		bookmark.Title = *input.Title
	}
	if input.Description != nil {
		bookmark.Description = *input.Description
	}
	if input.Link.Set {
		if input.Link.Valid {
			link := input.Link.Value
			bookmark.Link = &link
		} else {
			bookmark.Link = nil
		}
	}

	if err := srv.bookmarkRepo.Update(ctx, bookmark); err != nil {
		return nil, errors.Wrap(err, "failed to update bookmark")
	}

	srv.log(ctx).Debug("Bookmark updated", slog.Any("bookmarkID", bookmarkID))

	return bookmark, nil
}

// Remove deletes an owned bookmark.
func (srv *bookmarkService) Remove(ctx context.Context, ownerID, bookmarkID uuid.UUID) error {
	if _, err := srv.findOwnedBookmark(ctx, ownerID, bookmarkID); err != nil {
		return err
	}

	if err := srv.bookmarkRepo.Delete(ctx, bookmarkID); err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			// Deleted between the ownership check and now; treat as gone.
			return errors.Wrap(domainerrors.ErrNotFound, "bookmark not found")
		}

		return errors.Wrap(err, "failed to delete bookmark")
	}

	srv.log(ctx).Debug("Bookmark removed", slog.Any("bookmarkID", bookmarkID))

	return nil
}

// List returns one page of the owner's bookmarks, newest first, optionally
// narrowed by a case-insensitive search over title and description.
func (srv *bookmarkService) List(ctx context.Context, ownerID uuid.UUID, input *usecase.ListBookmarksInput) (*usecase.BookmarkListOutput, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	filter := repository.BookmarkSearchFilter{
		Search: input.Search,
		Offset: (page - 1) * limit,
		Limit:  limit,
	}

	bookmarks, total, err := srv.bookmarkRepo.FindByOwner(ctx, ownerID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.BookmarkListOutput{
		Data:       bookmarks,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

// ShareQR renders an owned bookmark's link as a PNG QR code.
func (srv *bookmarkService) ShareQR(ctx context.Context, ownerID, bookmarkID uuid.UUID) ([]byte, error) {
	bookmark, err := srv.findOwnedBookmark(ctx, ownerID, bookmarkID)
	if err != nil {
		return nil, err
	}

	if bookmark.Link == nil || *bookmark.Link == "" {
		return nil, errors.Wrap(domainerrors.ErrBookmarkHasNoLink, "bookmark has no link")
	}

	png, err := srv.qrcodeService.GenerateLinkQR(*bookmark.Link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}
