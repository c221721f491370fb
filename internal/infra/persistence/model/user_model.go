package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Wishlist and cart are JSON array columns so the store keeps the ordered,
// document-style list semantics of the account service.
type UserModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string                      `gorm:"type:varchar(100);not null"`
	Email        string                      `gorm:"type:varchar(255);not null;index"`
	PasswordHash string                      `gorm:"type:varchar(255);not null"`
	Wishlist     datatypes.JSONSlice[string] `gorm:"not null"`
	Cart         datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
