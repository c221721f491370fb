// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"shuttle/internal/domain/entity"
	domainerrors "shuttle/internal/domain/errors"
	"shuttle/internal/domain/repository"
	"shuttle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves the first user matching the email address. Email is
// not unique in the store; like a document-store findOne this returns the
// earliest match.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateProfile overwrites the username and email fields of an existing user
// and returns the updated record.
func (repo *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) (*entity.User, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"username": username, "email": email})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.FindByID(ctx, id)
}

const (
	cartColumn     = "cart"
	wishlistColumn = "wishlist"
)

// AppendCartItem appends an item id to the user's cart. Duplicates are
// allowed. The append is a single jsonb concat statement, so concurrent
// appends to the same row never lose items.
func (repo *userRepository) AppendCartItem(ctx context.Context, id uuid.UUID, itemID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update(cartColumn, gorm.Expr(cartColumn+" || to_jsonb(?::text)", itemID))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to append cart item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// RemoveCartItem removes every occurrence of the item id from the user's cart.
// A pull on an absent value is a successful no-op.
func (repo *userRepository) RemoveCartItem(ctx context.Context, id uuid.UUID, itemID string) error {
	return repo.removeListItem(ctx, id, cartColumn, itemID)
}

// AppendWishlistItem appends an item id to the user's wishlist. The `@>`
// containment guard is part of the UPDATE's WHERE clause, so two concurrent
// appends of the same item cannot both commit: the loser matches no row and
// reports the duplicate.
func (repo *userRepository) AppendWishlistItem(ctx context.Context, id uuid.UUID, itemID string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ? AND NOT ("+wishlistColumn+" @> to_jsonb(?::text))", id, itemID).
		Update(wishlistColumn, gorm.Expr(wishlistColumn+" || to_jsonb(?::text)", itemID))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to append wishlist item")
	}
	if result.RowsAffected == 0 {
		// Either the row is missing or the guard blocked a duplicate.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.UserModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check user for wishlist append")
		}
		if count == 0 {
			return repository.ErrUserNotFound
		}

		return repository.ErrWishlistDuplicate
	}

	return nil
}

// RemoveWishlistItem removes every occurrence of the item id from the user's wishlist.
func (repo *userRepository) RemoveWishlistItem(ctx context.Context, id uuid.UUID, itemID string) error {
	return repo.removeListItem(ctx, id, wishlistColumn, itemID)
}

// removeListItem rebuilds the named jsonb list column without the item in one
// UPDATE statement, preserving element order. Column names come from the two
// package constants, never from input.
func (repo *userRepository) removeListItem(ctx context.Context, id uuid.UUID, column, itemID string) error {
	rebuild := fmt.Sprintf(
		"COALESCE((SELECT jsonb_agg(elem) FROM jsonb_array_elements(%s) elem WHERE elem <> to_jsonb(?::text)), '[]'::jsonb)",
		column,
	)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update(column, gorm.Expr(rebuild, itemID))

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to remove %s item", column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Wishlist:     []string(data.Wishlist),
		Cart:         []string(data.Cart),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Username:     data.Username,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Wishlist:     datatypes.JSONSlice[string](data.Wishlist),
		Cart:         datatypes.JSONSlice[string](data.Cart),
	}
}
