package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"marks/internal/delivery/http/middleware"
	"marks/internal/domain/entity"
	domainerrors "marks/internal/domain/errors"
	"marks/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookmarkUsecase counts invocations so tests can assert a handler bailed
// out before reaching the usecase.
type stubBookmarkUsecase struct {
	calls int
}

func (s *stubBookmarkUsecase) Create(_ context.Context, _ uuid.UUID, _ *usecase.CreateBookmarkInput) (*entity.Bookmark, error) {
	s.calls++

	return nil, nil
}

func (s *stubBookmarkUsecase) FindOne(_ context.Context, _, _ uuid.UUID) (*entity.Bookmark, error) {
	s.calls++

	return nil, nil
}

func (s *stubBookmarkUsecase) Update(_ context.Context, _, _ uuid.UUID, _ *usecase.UpdateBookmarkInput) (*entity.Bookmark, error) {
	s.calls++

	return nil, nil
}

func (s *stubBookmarkUsecase) Remove(_ context.Context, _, _ uuid.UUID) error {
	s.calls++

	return nil
}

func (s *stubBookmarkUsecase) List(_ context.Context, _ uuid.UUID, _ *usecase.ListBookmarksInput) (*usecase.BookmarkListOutput, error) {
	s.calls++

	return nil, nil
}

func (s *stubBookmarkUsecase) ShareQR(_ context.Context, _, _ uuid.UUID) ([]byte, error) {
	s.calls++

	return nil, nil
}

func newBookmarkContext(e *echo.Echo, method, target, rawID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(rawID)
	c.Set(middleware.UserIDKey, uuid.New())

	return c, rec
}

func TestBookmarkHandler_InvalidID(t *testing.T) {
	stub := &stubBookmarkUsecase{}
	handler := &BookmarkHandler{
		uc:     stub,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	e := newTestEcho()

	tests := []struct {
		name string
		call func(c echo.Context) error
	}{
		{name: "FindOne", call: handler.FindOne},
		{name: "Update", call: handler.Update},
		{name: "Remove", call: handler.Remove},
		{name: "ShareQR", call: handler.ShareQR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newBookmarkContext(e, http.MethodGet, "/bookmark/not-a-uuid", "not-a-uuid")

			err := tt.call(c)

			// The handler must stop with an error instead of writing the
			// response itself and continuing into the usecase.
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())

			assert.Zero(t, stub.calls)
			assert.False(t, c.Response().Committed)
		})
	}
}

func TestBookmarkHandler_FindOne_ValidID(t *testing.T) {
	id := uuid.New()
	stub := &stubBookmarkUsecase{}
	uc := &fixedBookmarkUsecase{
		stubBookmarkUsecase: stub,
		bookmark:            &entity.Bookmark{ID: id, UserID: uuid.New(), Title: "Mine"},
	}
	handler := &BookmarkHandler{
		uc:     uc,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	e := newTestEcho()

	c, rec := newBookmarkContext(e, http.MethodGet, "/bookmark/"+id.String(), id.String())

	require.NoError(t, handler.FindOne(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stub.calls)
	assert.Contains(t, rec.Body.String(), "Mine")
}

// fixedBookmarkUsecase returns a canned bookmark from FindOne.
type fixedBookmarkUsecase struct {
	*stubBookmarkUsecase
	bookmark *entity.Bookmark
}

func (f *fixedBookmarkUsecase) FindOne(_ context.Context, _, _ uuid.UUID) (*entity.Bookmark, error) {
	f.calls++

	return f.bookmark, nil
}
