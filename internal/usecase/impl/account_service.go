// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shuttle/internal/delivery/context"
	"shuttle/internal/domain/entity"
	domainerrors "shuttle/internal/domain/errors"
	"shuttle/internal/domain/repository"
	"shuttle/internal/domain/service"
	"shuttle/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo  repository.UserRepository
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	sessions  service.SessionDirectory
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	userRepo repository.UserRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	sessions service.SessionDirectory,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		userRepo:  userRepo,
		txManager: txManager,
		hasher:    hasher,
		sessions:  sessions,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates a new user with empty cart and wishlist.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	srv.log(ctx).Info("Starting signup", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage("failed to hash password")
	}

	newUser := &entity.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Wishlist:     []string{},
		Cart:         []string{},
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err), slog.String("email", input.Email))

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage("failed to create user")
	}
	srv.log(ctx).Debug("User registered successfully", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{User: newUser}, nil
}

// Login verifies the credentials and, on a match, issues a fresh session token.
// A non-matching pair never creates a session.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Info("Starting login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}
		srv.log(ctx).Error("Failed to look up user during login", slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.WrapMessage("failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token := srv.sessions.Create(user)
	srv.log(ctx).Debug("Login successful", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token, User: user}, nil
}

// GetUser retrieves a user record by id.
func (srv *accountService) GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("get user failed")
		}
		srv.log(ctx).Error("Failed to find user", slog.Any("error", err), slog.Any("userID", userID))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
	}

	return user, nil
}

// AddToCart resolves the session token and appends the item to that user's
// cart. Duplicates are allowed. An unresolved token answers "user not found",
// matching the original wire behaviour.
func (srv *accountService) AddToCart(ctx context.Context, sessionToken, itemID string) error {
	sess, ok := srv.sessions.Resolve(sessionToken)
	if !ok {
		return domainerrors.ErrUserNotFound.WrapMessage("session did not resolve")
	}

	if err := srv.userRepo.AppendCartItem(ctx, sess.User.ID, itemID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("add to cart failed")
		}
		srv.log(ctx).Error("Failed to add item to cart", slog.Any("error", err), slog.Any("userID", sess.User.ID))

		return domainerrors.ErrCartAddFailed.WrapMessage("failed to append cart item")
	}
	srv.log(ctx).Debug("Item added to cart", slog.Any("userID", sess.User.ID), slog.String("itemID", itemID))

	return nil
}

// AddToWishlist appends an item to the user's wishlist unless it is already
// present. The read gives the friendly duplicate answer for the common case;
// the append itself carries an atomic duplicate guard in the store, so two
// concurrent adds of the same item cannot both commit even when both reads
// passed. The transaction groups the read and the append.
func (srv *accountService) AddToWishlist(ctx context.Context, userID uuid.UUID, itemID string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("add to wishlist failed")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to find user by id")
		}

		if user.WishlistContains(itemID) {
			return domainerrors.ErrItemAlreadyInWishlist.WrapMessage("duplicate wishlist item")
		}

		if err := userRepo.AppendWishlistItem(ctx, userID, itemID); err != nil {
			if errors.Is(err, repository.ErrWishlistDuplicate) {
				return domainerrors.ErrItemAlreadyInWishlist.WrapMessage("concurrent duplicate wishlist item")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to append wishlist item")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Add to wishlist rejected", slog.Any("error", err), slog.Any("userID", userID))

		return errors.WithStack(err)
	}
	srv.log(ctx).Debug("Item added to wishlist", slog.Any("userID", userID), slog.String("itemID", itemID))

	return nil
}

// RemoveFromCart removes every occurrence of the item from the user's cart.
// Removing an item that is not in the cart still succeeds.
func (srv *accountService) RemoveFromCart(ctx context.Context, userID uuid.UUID, itemID string) error {
	if err := srv.userRepo.RemoveCartItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("remove from cart failed")
		}
		srv.log(ctx).Error("Failed to remove item from cart", slog.Any("error", err), slog.Any("userID", userID))

		return domainerrors.ErrCartRemoveFailed.WrapMessage("failed to remove cart item")
	}

	return nil
}

// RemoveFromWishlist removes every occurrence of the item from the user's wishlist.
func (srv *accountService) RemoveFromWishlist(ctx context.Context, userID uuid.UUID, itemID string) error {
	if err := srv.userRepo.RemoveWishlistItem(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("remove from wishlist failed")
		}
		srv.log(ctx).Error("Failed to remove item from wishlist", slog.Any("error", err), slog.Any("userID", userID))

		return domainerrors.ErrWishlistRemoveFailed.WrapMessage("failed to remove wishlist item")
	}

	return nil
}

// UpdateProfile overwrites the username and email fields and returns the updated record.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, username, email string) (*entity.User, error) {
	user, err := srv.userRepo.UpdateProfile(ctx, userID, username, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("update profile failed")
		}
		srv.log(ctx).Error("Failed to update profile", slog.Any("error", err), slog.Any("userID", userID))

		return nil, domainerrors.ErrProfileUpdateFailed.WrapMessage("failed to update profile")
	}
	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return user, nil
}
