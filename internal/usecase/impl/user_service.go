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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetMe retrieves the authenticated user's profile.
func (srv *userService) GetMe(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// EditUser applies a partial update to the user's profile. Nil fields are left
// untouched. A password change rewrites the credential row in the same
// transaction as the user row.
func (srv *userService) EditUser(ctx context.Context, userID uuid.UUID, input *usecase.EditUserInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	// Hash outside the transaction; bcrypt is deliberately slow.
	var hashedPassword string
	if input.Password != nil {
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to hash password during profile update", slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, "failed to hash password during profile update")
		}
		hashedPassword = hashed
	}

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		credentialRepo := repoFactory.CredentialRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		if input.Email != nil {
			user.Email = *input.Email
		}
		if input.Name != nil {
			user.Name = *input.Name
		}

		// The unique index on users.email surfaces as ErrDuplicateEmail here.
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		if input.Password != nil {
			credential, err := credentialRepo.FindByUserID(ctx, userID)
			if err != nil {
				if errors.Is(err, repository.ErrCredentialNotFound) {
					// No credential yet, e.g. an account seeded out of band.
					newCredential := &entity.Credential{
						UserID:       userID,
						Provider:     "email",
						PasswordHash: hashedPassword,
					}

					return credentialRepo.Create(ctx, newCredential)
				}

				return errors.Wrap(err, "failed to find credential")
			}

			credential.PasswordHash = hashedPassword
			if err := credentialRepo.Update(ctx, credential); err != nil {
				return errors.Wrap(err, "failed to update credential")
			}
		}

		updatedUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Profile update failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Profile update completed", slog.Any("userID", userID))

	return updatedUser, nil
}
