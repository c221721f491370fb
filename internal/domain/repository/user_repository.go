// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"shuttle/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrWishlistDuplicate is returned by AppendWishlistItem when the item is
// already on the wishlist. The store enforces the guard atomically, so a
// concurrent duplicate append loses even when both callers' reads passed.
var ErrWishlistDuplicate = errors.New("item already in wishlist")

// UserRepository defines the standard operations for user persistence.
// It mirrors a document store: find by id, find by filter, and field-level
// updates with array append/remove-by-value semantics on the list columns.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile overwrites the username and email fields of an existing
	// user and returns the updated record.
	UpdateProfile(ctx context.Context, id uuid.UUID, username, email string) (*entity.User, error)

	// AppendCartItem atomically appends an item id to the user's cart.
	// Duplicates are allowed.
	AppendCartItem(ctx context.Context, id uuid.UUID, itemID string) error

	// RemoveCartItem removes every occurrence of the item id from the user's
	// cart. Removing an absent item is a successful no-op.
	RemoveCartItem(ctx context.Context, id uuid.UUID, itemID string) error

	// AppendWishlistItem appends an item id to the user's wishlist. The
	// append and its duplicate guard run as one atomic statement;
	// ErrWishlistDuplicate reports an item that is already present.
	AppendWishlistItem(ctx context.Context, id uuid.UUID, itemID string) error

	// RemoveWishlistItem removes every occurrence of the item id from the
	// user's wishlist. Removing an absent item is a successful no-op.
	RemoveWishlistItem(ctx context.Context, id uuid.UUID, itemID string) error
}
