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

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service        usecase.AuthUsecase
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	credentialRepo *mockRepo.MockCredentialRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	credentialRepo := mockRepo.NewMockCredentialRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAuthService(AuthServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		CredentialRepo: credentialRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Logger:         newTestLogger(),
	})

	return authServiceFixtures{
		service:        service,
		txManager:      txManager,
		userRepo:       userRepo,
		credentialRepo: credentialRepo,
		hasher:         hasher,
		tokenService:   tokenService,
	}
}

func TestAuthService_SignUp_Success(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockCredentialRepo := mockRepo.NewMockCredentialRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockCredentialRepo)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			mockCredentialRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Credential")).
				Run(func(ctx context.Context, credential *entity.Credential) {
					assert.Equal(t, "hashed_password", credential.PasswordHash)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fixtures.service.SignUp(ctx, input)

	require.NoError(t, err)
	assert.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, input.Name, output.User.Name)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().CredentialRepo().Return(mockRepo.NewMockCredentialRepository(t))

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Return(domainerrors.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	output, err := fixtures.service.SignUp(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateEmail))
}

func TestAuthService_SignUp_HashFailure(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignUpInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fixtures.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fixtures.service.SignUp(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_SignIn_Success(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	user := &entity.User{
		ID:    uuid.New(),
		Email: input.Email,
		Name:  "Test User",
	}
	credential := &entity.Credential{
		ID:           uuid.New(),
		UserID:       user.ID,
		PasswordHash: "hashed_password",
	}

	fixtures.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fixtures.credentialRepo.EXPECT().FindByUserID(ctx, user.ID).Return(credential, nil)
	fixtures.hasher.EXPECT().Check(input.Password, credential.PasswordHash).Return(true)
	fixtures.tokenService.EXPECT().GenerateToken(user.ID, user.Email).Return("signed.jwt.token", nil)

	output, err := fixtures.service.SignIn(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, user, output.User)
}

func TestAuthService_SignIn_UnknownEmail(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{
		Email:    "nobody@example.com",
		Password: "Password123!",
	}

	fixtures.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fixtures.service.SignIn(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_SignIn_MissingCredential(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{
		Email:    "test@example.com",
		Password: "Password123!",
	}

	user := &entity.User{ID: uuid.New(), Email: input.Email}

	fixtures.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fixtures.credentialRepo.EXPECT().FindByUserID(ctx, user.ID).Return(nil, repository.ErrCredentialNotFound)

	output, err := fixtures.service.SignIn(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_SignIn_WrongPassword(t *testing.T) {
	fixtures := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.SignInInput{
		Email:    "test@example.com",
		Password: "wrong password",
	}

	user := &entity.User{ID: uuid.New(), Email: input.Email}
	credential := &entity.Credential{UserID: user.ID, PasswordHash: "hashed_password"}

	fixtures.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(user, nil)
	fixtures.credentialRepo.EXPECT().FindByUserID(ctx, user.ID).Return(credential, nil)
	fixtures.hasher.EXPECT().Check(input.Password, credential.PasswordHash).Return(false)

	output, err := fixtures.service.SignIn(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
