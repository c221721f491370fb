// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"shuttle/internal/delivery/http/middleware"
	"shuttle/internal/delivery/http/response"
	"shuttle/internal/domain/entity"
	domainerrors "shuttle/internal/domain/errors"
	"shuttle/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// userView is the outward shape of a user record. The password hash never
// leaves the service.
type userView struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Wishlist []string `json:"wishlist"`
	Cart     []string `json:"cart"`
}

func toUserView(user *entity.User) *userView {
	return &userView{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
		Wishlist: user.Wishlist,
		Cart:     user.Cart,
	}
}

// Signup handles the form-submitted registration request. The outcome is
// reported as an alert-and-redirect notice page, like the original frontend
// expects.
func (h *AccountHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.Notice(c, "Failed to register user", "/signup")
	}
	if err := c.Validate(&input); err != nil {
		return response.Notice(c, "Failed to register user", "/signup")
	}

	if _, err := h.uc.Signup(c.Request().Context(), &input); err != nil {
		return response.Notice(c, "Failed to register user", "/signup")
	}

	return response.Notice(c, "User registered successfully", "/")
}

// Login handles the form-submitted login request. On success the session
// token is set as the `uid` cookie and the browser is redirected to the
// landing page.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.Notice(c, "Login failed", "/login")
	}
	if err := c.Validate(&input); err != nil {
		return response.Notice(c, "Login failed", "/login")
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return response.Notice(c, "Invalid username or password", "/login")
		}

		return response.Notice(c, "Login failed", "/login")
	}

	c.SetCookie(&http.Cookie{
		Name:  middleware.SessionCookieName,
		Value: output.Token,
		Path:  "/",
	})

	return c.Redirect(http.StatusFound, "/index")
}

// GetUser handles the request for a user record by id.
func (h *AccountHandler) GetUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		// An unparseable id can never resolve to a record.
		return response.NotFound(c, "USER_NOT_FOUND", "User not found")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserView(user)}, "User retrieved successfully")
}

// AddToCart appends an item to the cart of the user the session cookie
// resolves to. The cookie is the only authentication on this route.
func (h *AccountHandler) AddToCart(c echo.Context) error {
	var token string
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		token = cookie.Value
	}

	var input usecase.AddToCartInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid add-to-cart input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.AddToCart(c.Request().Context(), token, input.ItemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item added to cart successfully")
}

// AddToWishlist appends an item to the wishlist of the user named in the
// payload, rejecting duplicates.
func (h *AccountHandler) AddToWishlist(c echo.Context) error {
	input, userID, err := h.bindListItem(c)
	if err != nil {
		return err
	}

	if err := h.uc.AddToWishlist(c.Request().Context(), userID, input.ItemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item added to wishlist successfully")
}

// RemoveFromCart removes an item from the cart of the user named in the payload.
func (h *AccountHandler) RemoveFromCart(c echo.Context) error {
	input, userID, err := h.bindListItem(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFromCart(c.Request().Context(), userID, input.ItemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from cart successfully")
}

// RemoveFromWishlist removes an item from the wishlist of the user named in the payload.
func (h *AccountHandler) RemoveFromWishlist(c echo.Context) error {
	input, userID, err := h.bindListItem(c)
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFromWishlist(c.Request().Context(), userID, input.ItemID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Item removed from wishlist successfully")
}

// UpdateProfile overwrites the username and email of the user named in the payload.
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		return response.NotFound(c, "USER_NOT_FOUND", "User not found")
	}

	user, err := h.uc.UpdateProfile(c.Request().Context(), userID, input.Username, input.Email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserView(user)}, "User profile updated successfully")
}

// bindListItem binds and validates the shared {userID, itemID} payload.
// Every failure path returns a non-nil error so callers can bail out before
// touching the input; rendering is left to the error handler.
func (h *AccountHandler) bindListItem(c echo.Context) (*usecase.ListItemInput, uuid.UUID, error) {
	var input usecase.ListItemInput
	if err := c.Bind(&input); err != nil {
		return nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid list item input")
	}
	if err := c.Validate(&input); err != nil {
		return nil, uuid.Nil, errors.WithStack(err)
	}

	userID, err := uuid.Parse(input.UserID)
	if err != nil {
		// An unparseable id can never resolve to a record.
		return nil, uuid.Nil, domainerrors.ErrUserNotFound.WrapMessage("unparseable user id")
	}

	return &input, userID, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
