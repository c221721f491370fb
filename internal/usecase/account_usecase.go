// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shuttle/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create a new account.
type SignupInput struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Email    string `json:"email" form:"email" validate:"required,email"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// AddToCartInput carries the item to append to the session user's cart.
type AddToCartInput struct {
	ItemID string `json:"itemId" validate:"required"`
}

// ListItemInput identifies a user and an item for wishlist/cart mutation.
// The user id is client-supplied here, mirroring the original wire contract.
type ListItemInput struct {
	UserID string `json:"userID" validate:"required"`
	ItemID string `json:"itemID" validate:"required"`
}

// UpdateProfileInput carries the profile fields to overwrite.
type UpdateProfileInput struct {
	UserID   string `json:"userID" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

// --- Output DTOs ---

// SignupOutput returns the newly created user.
type SignupOutput struct {
	User *entity.User
}

// LoginOutput returns the issued session token together with the resolved user.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., HTTP handlers) will depend on.
type AccountUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// AddToCart appends an item to the cart of the user the session token
	// resolves to. An unresolved token reports "user not found".
	AddToCart(ctx context.Context, sessionToken, itemID string) error

	// AddToWishlist appends an item to a user's wishlist, rejecting
	// duplicates before the write.
	AddToWishlist(ctx context.Context, userID uuid.UUID, itemID string) error

	RemoveFromCart(ctx context.Context, userID uuid.UUID, itemID string) error
	RemoveFromWishlist(ctx context.Context, userID uuid.UUID, itemID string) error

	UpdateProfile(ctx context.Context, userID uuid.UUID, username, email string) (*entity.User, error)
}
