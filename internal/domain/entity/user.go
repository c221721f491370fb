// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is the single persistent entity of the account service. Besides the
// login identity it carries the two per-user item lists: the wishlist, whose
// entries are unique, and the cart, which allows duplicates.
type User struct {
	ID           uuid.UUID // Unique identifier assigned by the store at creation.
	Username     string    // Display name, mutable via profile update.
	Email        string    // Login identifier, mutable via profile update.
	PasswordHash string    // Salted hash of the login password. Never serialized outward.
	Wishlist     []string  // Ordered item ids, unique per user (enforced by the account service).
	Cart         []string  // Ordered item ids, duplicates allowed.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WishlistContains reports whether the given item id is already on the wishlist.
// The uniqueness invariant lives here, not in the store.
func (u *User) WishlistContains(itemID string) bool {
	return slices.Contains(u.Wishlist, itemID)
}
