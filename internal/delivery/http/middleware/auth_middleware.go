package middleware

import (
	"net/http"

	"shuttle/internal/domain/entity"
	"shuttle/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	// SessionCookieName is the cookie carrying the opaque session token.
	SessionCookieName = "uid"

	// contextKeyUser is the echo context key holding the resolved user.
	contextKeyUser = "user"
)

// AuthMiddleware guards the page routes that require a logged-in user. It is
// a pure function of the cookie value and the session directory state.
type AuthMiddleware struct {
	sessions service.SessionDirectory
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessions service.SessionDirectory) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// RequireLogin resolves the session cookie through the session directory.
// A missing or unresolvable token redirects the browser to the login page;
// otherwise the resolved user is attached to the request for handlers to use.
func (m *AuthMiddleware) RequireLogin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return c.Redirect(http.StatusFound, "/login")
		}

		sess, ok := m.sessions.Resolve(cookie.Value)
		if !ok {
			return c.Redirect(http.StatusFound, "/login")
		}

		c.Set(contextKeyUser, sess.User)

		return next(c)
	}
}

// CurrentUser returns the user attached by RequireLogin.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(contextKeyUser).(*entity.User)

	return user, ok
}
