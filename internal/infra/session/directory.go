// Package session implements the process-wide in-memory session directory.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"shuttle/config"
	"shuttle/internal/domain/entity"
	"shuttle/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultSweepInterval = time.Minute

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// directory is an RWMutex-guarded map from opaque token to session. Login
// writes it, the authentication gate reads it; distinct tokens are fully
// independent. There is no logout path: entries only leave the table through
// TTL eviction, and with a zero TTL they live for the process lifetime, as in
// the original system.
type directory struct {
	mu       sync.RWMutex
	sessions map[string]*entity.Session
	ttl      time.Duration
}

// New creates the session directory. When a TTL is configured, a janitor
// goroutine sweeps expired entries until the process stops.
func New(params Params) service.SessionDirectory {
	dir := &directory{
		sessions: make(map[string]*entity.Session),
		ttl:      params.Config.Session.TTL,
	}

	if dir.ttl > 0 {
		sweepInterval := params.Config.Session.SweepInterval
		if sweepInterval <= 0 {
			sweepInterval = defaultSweepInterval
		}

		janitorCtx, cancelJanitor := context.WithCancel(context.Background())
		params.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go dir.sweep(janitorCtx, params.Logger, sweepInterval)

				return nil
			},
			OnStop: func(context.Context) error {
				cancelJanitor()

				return nil
			},
		})
	}

	return dir
}

// Create issues a fresh opaque token and records the token-to-user binding.
// Tokens are 128-bit random values; collisions are negligible and tokens are
// never reused.
func (d *directory) Create(user *entity.User) string {
	token := uuid.NewString()
	sess := &entity.Session{
		Token:     token,
		User:      user,
		CreatedAt: time.Now(),
	}

	d.mu.Lock()
	d.sessions[token] = sess
	d.mu.Unlock()

	return token
}

// Resolve looks the token up. A miss means "unauthenticated", not failure.
func (d *directory) Resolve(token string) (*entity.Session, bool) {
	d.mu.RLock()
	sess, ok := d.sessions[token]
	d.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if d.expired(sess, time.Now()) {
		return nil, false
	}

	return sess, true
}

// Len reports the number of live sessions. Entries past their TTL do not
// count, even before the janitor has swept them.
func (d *directory) Len() int {
	now := time.Now()

	d.mu.RLock()
	defer d.mu.RUnlock()

	live := 0
	for _, sess := range d.sessions {
		if !d.expired(sess, now) {
			live++
		}
	}

	return live
}

func (d *directory) expired(sess *entity.Session, now time.Time) bool {
	return d.ttl > 0 && now.Sub(sess.CreatedAt) > d.ttl
}

// sweep periodically drops expired sessions so an idle table does not grow
// without bound when a TTL is configured.
func (d *directory) sweep(ctx context.Context, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			evicted := 0

			d.mu.Lock()
			for token, sess := range d.sessions {
				if d.expired(sess, now) {
					delete(d.sessions, token)
					evicted++
				}
			}
			remaining := len(d.sessions)
			d.mu.Unlock()

			if evicted > 0 {
				logger.Debug("Swept expired sessions",
					slog.Int("evicted", evicted),
					slog.Int("remaining", remaining))
			}
		}
	}
}
