package session

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"shuttle/config"
	"shuttle/internal/domain/entity"
	"shuttle/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDirectory(t *testing.T, ttl time.Duration) service.SessionDirectory {
	t.Helper()

	return newDirectoryWithSweep(t, ttl, 10*time.Millisecond)
}

func newDirectoryWithSweep(t *testing.T, ttl, sweepInterval time.Duration) service.SessionDirectory {
	t.Helper()

	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{TTL: ttl, SweepInterval: sweepInterval}

	lc := fxtest.NewLifecycle(t)
	dir := New(Params{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return dir
}

func testUser(username string) *entity.User {
	return &entity.User{ID: uuid.New(), Username: username, Email: username + "@example.com"}
}

func TestDirectoryCreateResolve(t *testing.T) {
	dir := newDirectory(t, 0)
	user := testUser("alice")

	token := dir.Create(user)
	require.NotEmpty(t, token)

	sess, ok := dir.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, token, sess.Token)
	assert.Same(t, user, sess.User)
}

func TestDirectoryUnknownToken(t *testing.T) {
	dir := newDirectory(t, 0)
	dir.Create(testUser("alice"))

	sess, ok := dir.Resolve("never-issued")

	assert.False(t, ok)
	assert.Nil(t, sess)
}

func TestDirectoryTokensAreUnique(t *testing.T) {
	dir := newDirectory(t, 0)
	user := testUser("alice")

	seen := make(map[string]struct{})
	for range 100 {
		token := dir.Create(user)
		_, dup := seen[token]
		require.False(t, dup)
		seen[token] = struct{}{}
	}

	assert.Equal(t, 100, dir.Len())
}

func TestDirectoryTokensAreIndependent(t *testing.T) {
	dir := newDirectory(t, 0)
	alice := testUser("alice")
	bob := testUser("bob")

	aliceToken := dir.Create(alice)
	bobToken := dir.Create(bob)

	aliceSess, ok := dir.Resolve(aliceToken)
	require.True(t, ok)
	bobSess, ok := dir.Resolve(bobToken)
	require.True(t, ok)

	assert.Same(t, alice, aliceSess.User)
	assert.Same(t, bob, bobSess.User)
}

func TestDirectoryTTLExpiry(t *testing.T) {
	dir := newDirectory(t, 20*time.Millisecond)
	token := dir.Create(testUser("alice"))

	_, ok := dir.Resolve(token)
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := dir.Resolve(token)

		return !ok
	}, time.Second, 5*time.Millisecond)

	// The janitor eventually drops the entry from the table too.
	assert.Eventually(t, func() bool {
		return dir.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestDirectoryLenSkipsExpiredBeforeSweep(t *testing.T) {
	// An hour-long sweep interval keeps the janitor out of the picture, so
	// only Len's own filtering can exclude the expired entry.
	dir := newDirectoryWithSweep(t, 20*time.Millisecond, time.Hour)
	dir.Create(testUser("alice"))

	require.Equal(t, 1, dir.Len())

	assert.Eventually(t, func() bool {
		return dir.Len() == 0
	}, time.Second, 5*time.Millisecond)
}

func TestDirectoryZeroTTLNeverExpires(t *testing.T) {
	dir := newDirectory(t, 0)
	token := dir.Create(testUser("alice"))

	time.Sleep(50 * time.Millisecond)

	_, ok := dir.Resolve(token)
	assert.True(t, ok)
}

func TestDirectoryConcurrentAccess(t *testing.T) {
	dir := newDirectory(t, 0)

	const workers = 16
	const perWorker = 50

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user := testUser(fmt.Sprintf("user-%d", i))
			for range perWorker {
				token := dir.Create(user)
				sess, ok := dir.Resolve(token)
				assert.True(t, ok)
				assert.Same(t, user, sess.User)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, dir.Len())
}
