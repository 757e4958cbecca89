package handler

import (
	"log/slog"
	"net/http"

	"marks/internal/delivery/http/response"
	"marks/internal/delivery/http/validator"
	domainerrors "marks/internal/domain/errors"
	"marks/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BookmarkHandler holds dependencies for bookmark handlers.
type BookmarkHandler struct {
	uc     usecase.BookmarkUsecase
	logger *slog.Logger
}

// NewBookmarkHandler is the constructor for BookmarkHandler, injected by Fx.
func NewBookmarkHandler(uc usecase.BookmarkUsecase, logger *slog.Logger) *BookmarkHandler {
	return &BookmarkHandler{
		uc:     uc,
		logger: logger,
	}
}

// bookmarkIDParam parses the :id path parameter. A malformed ID surfaces as a
// validation error so the error handler renders the 400 and the caller stops
// before reaching the usecase.
func bookmarkIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid bookmark ID")
	}

	return id, nil
}

// Create handles bookmark creation.
func (h *BookmarkHandler) Create(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	bookmark, err := h.uc.Create(c.Request().Context(), userID, &usecase.CreateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBookmarkResponse(bookmark), "Bookmark created successfully")
}

// FindOne handles retrieval of a single bookmark.
func (h *BookmarkHandler) FindOne(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := bookmarkIDParam(c)
	if err != nil {
		return err
	}

	bookmark, err := h.uc.FindOne(c.Request().Context(), userID, bookmarkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark), "Bookmark retrieved successfully")
}

// Update handles a partial bookmark update.
func (h *BookmarkHandler) Update(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := bookmarkIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateBookmarkRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bookmark update input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}
	// The url tag cannot reach inside Optional, so the supplied link is
	// validated separately. Null passes through untouched.
	if req.Link.Set && req.Link.Valid {
		if v, ok := c.Echo().Validator.(*validator.CustomValidator); ok {
			if err := v.ValidateVar(req.Link.Value, "url"); err != nil {
				return errors.WithStack(err)
			}
		}
	}

	bookmark, err := h.uc.Update(c.Request().Context(), userID, bookmarkID, &usecase.UpdateBookmarkInput{
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookmarkResponse(bookmark), "Bookmark updated successfully")
}

// Remove handles bookmark deletion.
func (h *BookmarkHandler) Remove(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := bookmarkIDParam(c)
	if err != nil {
		return err
	}

	if err := h.uc.Remove(c.Request().Context(), userID, bookmarkID); err != nil {
		return errors.WithStack(err)
	}

	// A confirmation message, not the deleted record.
	return response.Success(c, http.StatusOK, nil, "Bookmark deleted successfully")
}

// List handles the paged bookmark listing.
func (h *BookmarkHandler) List(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ListBookmarksRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid listing parameters")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.List(c.Request().Context(), userID, &usecase.ListBookmarksInput{
		Search: req.Search,
		Page:   req.Page,
		Limit:  req.Limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toBookmarkListResponse(output), "Bookmarks retrieved successfully")
}

// ShareQR renders a bookmark's link as a PNG QR code.
func (h *BookmarkHandler) ShareQR(c echo.Context) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bookmarkID, err := bookmarkIDParam(c)
	if err != nil {
		return err
	}

	png, err := h.uc.ShareQR(c.Request().Context(), userID, bookmarkID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
