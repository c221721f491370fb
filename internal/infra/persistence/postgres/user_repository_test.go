package postgres

import (
	"testing"

	"shuttle/internal/domain/entity"
	"shuttle/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestUserMapperRoundTrip(t *testing.T) {
	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$12$abcdefghijklmnopqrstuv",
		Wishlist:     []string{"shuttles-12"},
		Cart:         []string{"racket-99", "racket-99"},
	}

	got := toUserDomain(fromUserDomain(user))

	assert.Equal(t, user, got)
}

func TestUserMapperNilModel(t *testing.T) {
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}

func TestUserMapperEmptyLists(t *testing.T) {
	m := &model.UserModel{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Wishlist: datatypes.JSONSlice[string]{},
		Cart:     datatypes.JSONSlice[string]{},
	}

	got := toUserDomain(m)

	assert.Empty(t, got.Wishlist)
	assert.Empty(t, got.Cart)
}

func TestUserModelListColumns(t *testing.T) {
	m := fromUserDomain(&entity.User{
		ID:   uuid.New(),
		Cart: []string{"racket-99"},
	})

	assert.IsType(t, datatypes.JSONSlice[string]{}, m.Cart)
	assert.Equal(t, "users", m.TableName())
}
