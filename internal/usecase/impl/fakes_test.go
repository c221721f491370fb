package impl

import (
	"context"
	"slices"
	"sync"
	"time"

	"shuttle/internal/domain/entity"
	"shuttle/internal/domain/repository"
	"shuttle/internal/domain/service"

	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository keyed by id. It preserves the
// lookup semantics of the real store: FindByEmail returns the first match in
// insertion order, list removal drops every occurrence and succeeds on absence.
type fakeUserRepo struct {
	mu    sync.Mutex
	order []uuid.UUID
	users map[uuid.UUID]*entity.User

	createErr         error
	findErr           error
	appendWishlistErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return cloneUser(user), nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	for _, id := range r.order {
		if r.users[id].Email == email {
			return cloneUser(r.users[id]), nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return r.createErr
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	r.order = append(r.order, user.ID)
	r.users[user.ID] = cloneUser(user)

	return nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, id uuid.UUID, username, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	user.Username = username
	user.Email = email
	user.UpdatedAt = time.Now()

	return cloneUser(user), nil
}

func (r *fakeUserRepo) AppendCartItem(_ context.Context, id uuid.UUID, itemID string) error {
	return r.mutate(id, func(user *entity.User) {
		user.Cart = append(user.Cart, itemID)
	})
}

func (r *fakeUserRepo) RemoveCartItem(_ context.Context, id uuid.UUID, itemID string) error {
	return r.mutate(id, func(user *entity.User) {
		user.Cart = slices.DeleteFunc(user.Cart, func(v string) bool { return v == itemID })
	})
}

// AppendWishlistItem carries the store's atomic duplicate guard: an item that
// is already present is rejected inside the same locked section as the append.
func (r *fakeUserRepo) AppendWishlistItem(_ context.Context, id uuid.UUID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.appendWishlistErr != nil {
		return r.appendWishlistErr
	}

	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	if slices.Contains(user.Wishlist, itemID) {
		return repository.ErrWishlistDuplicate
	}

	user.Wishlist = append(user.Wishlist, itemID)
	user.UpdatedAt = time.Now()

	return nil
}

func (r *fakeUserRepo) RemoveWishlistItem(_ context.Context, id uuid.UUID, itemID string) error {
	return r.mutate(id, func(user *entity.User) {
		user.Wishlist = slices.DeleteFunc(user.Wishlist, func(v string) bool { return v == itemID })
	})
}

func (r *fakeUserRepo) mutate(id uuid.UUID, fn func(user *entity.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}

	fn(user)
	user.UpdatedAt = time.Now()

	return nil
}

// get returns the stored record for assertions.
func (r *fakeUserRepo) get(id uuid.UUID) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	return cloneUser(r.users[id])
}

func cloneUser(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}

	clone := *user
	clone.Wishlist = slices.Clone(user.Wishlist)
	clone.Cart = slices.Clone(user.Cart)

	return &clone
}

// fakeTxManager runs the function against the same in-memory repository;
// there is nothing to roll back.
type fakeTxManager struct {
	repo *fakeUserRepo
}

func (m *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m)
}

func (m *fakeTxManager) UserRepo() repository.UserRepository {
	return m.repo
}

// fakeHasher marks hashes with a prefix so tests can assert the plaintext
// never reaches storage.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeSessions is a plain map session directory.
type fakeSessions struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]*entity.Session)}
}

func (s *fakeSessions) Create(user *entity.User) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	s.sessions[token] = &entity.Session{Token: token, User: user, CreatedAt: time.Now()}

	return token
}

func (s *fakeSessions) Resolve(token string) (*entity.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[token]

	return sess, ok
}

func (s *fakeSessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)
var _ repository.TransactionManager = (*fakeTxManager)(nil)
var _ service.PasswordHasher = fakeHasher{}
var _ service.SessionDirectory = (*fakeSessions)(nil)
