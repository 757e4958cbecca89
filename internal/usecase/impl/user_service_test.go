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

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Logger:    newTestLogger(),
	})

	return userServiceFixtures{
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

func TestUserService_GetMe_Success(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:    uuid.New(),
		Email: "test@example.com",
		Name:  "Test User",
	}

	fixtures.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	found, err := fixtures.service.GetMe(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestUserService_GetMe_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	fixtures.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	found, err := fixtures.service.GetMe(ctx, userID)

	assert.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestUserService_EditUser_NameAndEmail(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.EditUserInput{
		Email: strPtr("new@example.com"),
		Name:  strPtr("New Name"),
	}

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockRepo.NewMockCredentialRepository(t))

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: "old@example.com", Name: "Old Name"}, nil)

			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "new@example.com", user.Email)
					assert.Equal(t, "New Name", user.Name)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	updated, err := fixtures.service.EditUser(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "New Name", updated.Name)
}

func TestUserService_EditUser_PasswordChange(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.EditUserInput{
		Password: strPtr("NewPassword123!"),
	}

	fixtures.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: "test@example.com"}, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(nil)

			mockCredentialRepo.EXPECT().
				FindByUserID(ctx, userID).
				Return(&entity.Credential{ID: uuid.New(), UserID: userID, PasswordHash: "old_hash"}, nil)
			mockCredentialRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Credential")).
				Run(func(ctx context.Context, credential *entity.Credential) {
					assert.Equal(t, "new_hash", credential.PasswordHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	updated, err := fixtures.service.EditUser(ctx, userID, input)

	require.NoError(t, err)
	assert.NotNil(t, updated)
}

func TestUserService_EditUser_DuplicateEmail(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.EditUserInput{
		Email: strPtr("taken@example.com"),
	}

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockRepo.NewMockCredentialRepository(t))

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(&entity.User{ID: userID, Email: "old@example.com"}, nil)
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Return(domainerrors.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	updated, err := fixtures.service.EditUser(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestUserService_EditUser_NotFound(t *testing.T) {
	fixtures := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.EditUserInput{Name: strPtr("New Name")}

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockRepo.NewMockCredentialRepository(t))

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(nil, repository.ErrUserNotFound)

			return fn(mockFactory)
		})

	updated, err := fixtures.service.EditUser(ctx, userID, input)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
