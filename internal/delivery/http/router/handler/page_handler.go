package handler

import (
	"fmt"
	"html"
	"net/http"

	"shuttle/internal/delivery/http/middleware"

	"github.com/labstack/echo/v4"
)

const loginPage = `<!DOCTYPE html>
<html>
<head><title>Login</title></head>
<body>
  <h1>Login</h1>
  <form action="/login" method="POST">
    <input type="email" name="email" placeholder="Email" required />
    <input type="password" name="password" placeholder="Password" required />
    <button type="submit">Login</button>
  </form>
  <a href="/signup">Create an account</a>
</body>
</html>`

const signupPage = `<!DOCTYPE html>
<html>
<head><title>Sign Up</title></head>
<body>
  <h1>Sign Up</h1>
  <form action="/signup" method="POST">
    <input type="text" name="username" placeholder="Username" required />
    <input type="email" name="email" placeholder="Email" required />
    <input type="password" name="password" placeholder="Password" required />
    <button type="submit">Sign Up</button>
  </form>
  <a href="/">Back to login</a>
</body>
</html>`

// PageHandler serves the static shop pages.
type PageHandler struct{}

// NewPageHandler is the constructor for PageHandler.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Root redirects to the login page.
func (h *PageHandler) Root(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/login")
}

// LoginPage serves the login form.
func (h *PageHandler) LoginPage(c echo.Context) error {
	return c.HTML(http.StatusOK, loginPage)
}

// SignupPage serves the registration form.
func (h *PageHandler) SignupPage(c echo.Context) error {
	return c.HTML(http.StatusOK, signupPage)
}

// Index serves the landing page shown after login.
func (h *PageHandler) Index(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Shuttle Shop</title></head>
<body>
  <h1>Welcome, %s</h1>
  <a href="/badminton-products">Browse badminton products</a>
</body>
</html>`, html.EscapeString(user.Username))

	return c.HTML(http.StatusOK, page)
}

// Products serves the badminton product listing page.
func (h *PageHandler) Products(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Badminton Products</title></head>
<body>
  <h1>Badminton Products</h1>
  <p>Shopping as %s</p>
  <ul>
    <li>Yonex Astrox 99 Pro</li>
    <li>Victor Thruster K 9900</li>
    <li>Li-Ning Aeronaut 9000</li>
    <li>Feather shuttlecocks (dozen)</li>
  </ul>
</body>
</html>`, html.EscapeString(user.Username))

	return c.HTML(http.StatusOK, page)
}
