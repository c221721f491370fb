package entity

import "time"

// Session is the ephemeral, process-local binding between an opaque token and
// a resolved user. It is created at login, read on every protected request and
// never persisted.
type Session struct {
	Token     string // Opaque random identifier issued at login.
	User      *User  // User snapshot resolved at login.
	CreatedAt time.Time
}
