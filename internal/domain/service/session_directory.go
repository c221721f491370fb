package service

import "shuttle/internal/domain/entity"

// SessionDirectory maps opaque session tokens to logged-in users. It is the
// only source of "who is logged in" for protected routes.
//
// A lookup miss is a normal outcome signaling "unauthenticated", never an
// error: callers reject the request instead of failing the process.
type SessionDirectory interface {
	// Create issues a fresh, globally unique opaque token bound to the user
	// and records the mapping.
	Create(user *entity.User) string

	// Resolve returns the session bound to the token, or ok=false when the
	// token was never issued (or has expired).
	Resolve(token string) (*entity.Session, bool)

	// Len reports the number of live sessions.
	Len() int
}
