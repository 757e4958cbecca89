package impl

import (
	"context"
	"testing"

	"marks/internal/domain/entity"
	domainerrors "marks/internal/domain/errors"
	"marks/internal/domain/repository"
	mockRepo "marks/internal/mocks/repository"
	mockSvc "marks/internal/mocks/service"
	"marks/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bookmarkServiceFixtures holds all test dependencies for bookmark service tests.
type bookmarkServiceFixtures struct {
	service       usecase.BookmarkUsecase
	bookmarkRepo  *mockRepo.MockBookmarkRepository
	qrcodeService *mockSvc.MockQRCodeService
}

func createTestBookmarkService(t *testing.T) bookmarkServiceFixtures {
	bookmarkRepo := mockRepo.NewMockBookmarkRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	service := NewBookmarkService(BookmarkServiceParams{
		BookmarkRepo:  bookmarkRepo,
		QRCodeService: qrcodeService,
		Logger:        newTestLogger(),
	})

	return bookmarkServiceFixtures{
		service:       service,
		bookmarkRepo:  bookmarkRepo,
		qrcodeService: qrcodeService,
	}
}

func TestBookmarkService_Create_Success(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateBookmarkInput{
		Title:       "Effective Go",
		Description: "The canonical style document",
		Link:        strPtr("https://go.dev/doc/effective_go"),
	}

	fixtures.bookmarkRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Bookmark")).
		Run(func(ctx context.Context, bookmark *entity.Bookmark) {
			assert.Equal(t, ownerID, bookmark.UserID)
			assert.Equal(t, input.Title, bookmark.Title)
			bookmark.ID = uuid.New()
		}).
		Return(nil)

	bookmark, err := fixtures.service.Create(ctx, ownerID, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, bookmark.ID)
	assert.Equal(t, ownerID, bookmark.UserID)
}

func TestBookmarkService_Create_WithoutLink(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateBookmarkInput{Title: "Read later"}

	fixtures.bookmarkRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Bookmark")).
		Run(func(ctx context.Context, bookmark *entity.Bookmark) {
			assert.Nil(t, bookmark.Link)
		}).
		Return(nil)

	bookmark, err := fixtures.service.Create(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Nil(t, bookmark.Link)
}

func TestBookmarkService_FindOne_Success(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	bookmark := &entity.Bookmark{ID: uuid.New(), UserID: ownerID, Title: "Mine"}

	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmark.ID).Return(bookmark, nil)

	found, err := fixtures.service.FindOne(ctx, ownerID, bookmark.ID)

	require.NoError(t, err)
	assert.Equal(t, bookmark, found)
}

func TestBookmarkService_FindOne_NotFound(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	bookmarkID := uuid.New()

	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmarkID).Return(nil, repository.ErrBookmarkNotFound)

	found, err := fixtures.service.FindOne(ctx, uuid.New(), bookmarkID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestBookmarkService_FindOne_Forbidden(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	bookmark := &entity.Bookmark{ID: uuid.New(), UserID: uuid.New(), Title: "Someone else's"}

	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmark.ID).Return(bookmark, nil)

	found, err := fixtures.service.FindOne(ctx, uuid.New(), bookmark.ID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBookmarkService_Update_PartialFields(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	link := "https://go.dev"
	bookmark := &entity.Bookmark{
		ID:          uuid.New(),
		UserID:      ownerID,
		Title:       "Old Title",
		Description: "Old description",
		Link:        &link,
	}

	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmark.ID).Return(bookmark, nil)
	fixtures.bookmarkRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Bookmark")).
		Run(func(ctx context.Context, updated *entity.Bookmark) {
			assert.Equal(t, "New Title", updated.Title)
			// Untouched fields keep their values.
			assert.Equal(t, "Old description", updated.Description)
			require.NotNil(t, updated.Link)
			assert.Equal(t, link, *updated.Link)
		}).
		Return(nil)

	input := &usecase.UpdateBookmarkInput{Title: strPtr("New Title")}

	updated, err := fixtures.service.Update(ctx, ownerID, bookmark.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
}

func TestBookmarkService_Update_ClearLink(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	link := "https://go.dev"
	bookmark := &entity.Bookmark{ID: uuid.New(), UserID: ownerID, Title: "Title", Link: &link}

	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmark.ID).Return(bookmark, nil)
	fixtures.bookmarkRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Bookmark")).
		Run(func(ctx context.Context, updated *entity.Bookmark) {
			assert.Nil(t, updated.Link)
		}).
		Return(nil)

	// Explicit null clears the link.
	input := &usecase.UpdateBookmarkInput{Link: usecase.NewNullOptional[string]()}

	updated, err := fixtures.service.Update(ctx, ownerID, bookmark.ID, input)

	require.NoError(t, err)
	assert.Nil(t, updated.Link)
}

func TestBookmarkService_Update_SetLink(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	bookmark := &entity.Bookmark{ID: uuid.New(), UserID: ownerID, Title: "Title"}

	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmark.ID).Return(bookmark, nil)
	fixtures.bookmarkRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Bookmark")).
		Return(nil)

	input := &usecase.UpdateBookmarkInput{Link: usecase.NewOptional("https://pkg.go.dev")}

	updated, err := fixtures.service.Update(ctx, ownerID, bookmark.ID, input)

	require.NoError(t, err)
	require.NotNil(t, updated.Link)
	assert.Equal(t, "https://pkg.go.dev", *updated.Link)
}

func TestBookmarkService_Update_Forbidden(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	bookmark := &entity.Bookmark{ID: uuid.New(), UserID: uuid.New()}

	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmark.ID).Return(bookmark, nil)

	updated, err := fixtures.service.Update(ctx, uuid.New(), bookmark.ID, &usecase.UpdateBookmarkInput{})

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBookmarkService_Remove_Success(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	bookmark := &entity.Bookmark{ID: uuid.New(), UserID: ownerID}

	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmark.ID).Return(bookmark, nil)
	fixtures.bookmarkRepo.EXPECT().Delete(ctx, bookmark.ID).Return(nil)

	err := fixtures.service.Remove(ctx, ownerID, bookmark.ID)

	assert.NoError(t, err)
}

func TestBookmarkService_Remove_NotFound(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	bookmarkID := uuid.New()

	// A second delete of the same bookmark finds nothing and reports NotFound.
	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmarkID).Return(nil, repository.ErrBookmarkNotFound)

	err := fixtures.service.Remove(ctx, uuid.New(), bookmarkID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestBookmarkService_Remove_Forbidden(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	bookmark := &entity.Bookmark{ID: uuid.New(), UserID: uuid.New()}

	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmark.ID).Return(bookmark, nil)

	err := fixtures.service.Remove(ctx, uuid.New(), bookmark.ID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBookmarkService_List_Defaults(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	bookmarks := []*entity.Bookmark{
		{ID: uuid.New(), UserID: ownerID, Title: "a"},
		{ID: uuid.New(), UserID: ownerID, Title: "b"},
	}

	fixtures.bookmarkRepo.EXPECT().
		FindByOwner(ctx, ownerID, repository.BookmarkSearchFilter{Search: "", Offset: 0, Limit: 10}).
		Return(bookmarks, int64(2), nil)

	output, err := fixtures.service.List(ctx, ownerID, &usecase.ListBookmarksInput{})

	require.NoError(t, err)
	assert.Equal(t, bookmarks, output.Data)
	assert.Equal(t, int64(2), output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 10, output.Limit)
	assert.Equal(t, 1, output.TotalPages)
}

func TestBookmarkService_List_PagingAndSearch(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fixtures.bookmarkRepo.EXPECT().
		FindByOwner(ctx, ownerID, repository.BookmarkSearchFilter{Search: "go", Offset: 5, Limit: 5}).
		Return([]*entity.Bookmark{{ID: uuid.New(), UserID: ownerID}}, int64(11), nil)

	output, err := fixtures.service.List(ctx, ownerID, &usecase.ListBookmarksInput{
		Search: "go",
		Page:   2,
		Limit:  5,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), output.Total)
	assert.Equal(t, 2, output.Page)
	assert.Equal(t, 3, output.TotalPages)
}

func TestBookmarkService_List_EmptyPage(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fixtures.bookmarkRepo.EXPECT().
		FindByOwner(ctx, ownerID, repository.BookmarkSearchFilter{Search: "", Offset: 40, Limit: 10}).
		Return([]*entity.Bookmark{}, int64(3), nil)

	output, err := fixtures.service.List(ctx, ownerID, &usecase.ListBookmarksInput{Page: 5})

	require.NoError(t, err)
	assert.Empty(t, output.Data)
	assert.Equal(t, int64(3), output.Total)
	assert.Equal(t, 1, output.TotalPages)
}

func TestBookmarkService_ShareQR_Success(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	link := "https://go.dev/blog"
	bookmark := &entity.Bookmark{ID: uuid.New(), UserID: ownerID, Link: &link}

	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmark.ID).Return(bookmark, nil)
	fixtures.qrcodeService.EXPECT().GenerateLinkQR(link).Return([]byte("png-bytes"), nil)

	png, err := fixtures.service.ShareQR(ctx, ownerID, bookmark.ID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestBookmarkService_ShareQR_NoLink(t *testing.T) {
	fixtures := createTestBookmarkService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	bookmark := &entity.Bookmark{ID: uuid.New(), UserID: ownerID}

	fixtures.bookmarkRepo.EXPECT().FindByID(ctx, bookmark.ID).Return(bookmark, nil)

	png, err := fixtures.service.ShareQR(ctx, ownerID, bookmark.ID)

	assert.Error(t, err)
	assert.Nil(t, png)
	assert.True(t, errors.Is(err, domainerrors.ErrBookmarkHasNoLink))
}
