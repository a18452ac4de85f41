package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/show-booking/internal/repository"
	"github.com/iliyamo/show-booking/internal/service"
)

// UserHandler exposes the user registry over HTTP.  Deleting a user
// cascades: open bookings are cancelled (seats released, amounts
// refunded) and the wallet removed before the identity record goes,
// so nothing ever dangles against a missing user.
type UserHandler struct {
	Users    *repository.UserRepo
	Wallets  *repository.WalletRepo
	Bookings *service.BookingService
}

// NewUserHandler constructs a UserHandler.  All dependencies must be
// non-nil.
func NewUserHandler(users *repository.UserRepo, wallets *repository.WalletRepo, bookings *service.BookingService) *UserHandler {
	if users == nil || wallets == nil || bookings == nil {
		panic("nil dependency passed to NewUserHandler")
	}
	return &UserHandler{Users: users, Wallets: wallets, Bookings: bookings}
}

// Create handles POST /users.  Registers a user and their zero-balance
// wallet, returning 201 with {id, name, email}.  A duplicate email or
// an unusable body yields 400.
func (h *UserHandler) Create(c echo.Context) error {
	var body struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name == "" || body.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and email are required"})
	}
	u, err := h.Users.Create(body.Name, body.Email)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "could not create user"})
	}
	h.Wallets.CreateIfAbsent(u.ID)
	return c.JSON(http.StatusCreated, u)
}

// Get handles GET /users/:user_id, returning {id, name, email} or 404.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	u, err := h.Users.Get(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /users/:user_id with the full cascade.
// Returns 200 on success, 404 for an unknown user.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if !h.Users.Exists(id) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	// Cancel bookings while the wallet still exists so refunds land,
	// then drop the wallet and finally the identity record.
	if err := h.Bookings.CancelByUser(c.Request().Context(), id); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not cancel bookings"})
	}
	_ = h.Wallets.Delete(id)
	if err := h.Users.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.NoContent(http.StatusOK)
}

// DeleteAll handles DELETE /users.  Cancels all bookings, drops all
// wallets and all users, returning every service to its initial state.
// Always 200.
func (h *UserHandler) DeleteAll(c echo.Context) error {
	h.Bookings.CancelAll(c.Request().Context())
	h.Wallets.DeleteAll()
	h.Users.DeleteAll()
	return c.NoContent(http.StatusOK)
}
