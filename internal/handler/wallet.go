package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/show-booking/internal/model"
	"github.com/iliyamo/show-booking/internal/repository"
)

// WalletHandler exposes the account ledger over HTTP.  Credits and
// debits issued here go straight to the ledger and bypass the booking
// coordinator entirely.
type WalletHandler struct {
	Users   *repository.UserRepo
	Wallets *repository.WalletRepo
}

// NewWalletHandler constructs a WalletHandler.  Dependencies must be
// non-nil.
func NewWalletHandler(users *repository.UserRepo, wallets *repository.WalletRepo) *WalletHandler {
	if users == nil || wallets == nil {
		panic("nil dependency passed to NewWalletHandler")
	}
	return &WalletHandler{Users: users, Wallets: wallets}
}

// Get handles GET /wallets/:user_id, returning {user_id, balance} or
// 404 when the user has no wallet.
func (h *WalletHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	bal, err := h.Wallets.Balance(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "wallet not found"})
	}
	return c.JSON(http.StatusOK, model.Wallet{UserID: id, Balance: bal})
}

// Update handles PUT /wallets/:user_id with a body of
// {action: "credit"|"debit", amount}.  A missing wallet is created at
// zero balance first, but only for a registered user.  A debit that
// exceeds the balance is declined with 400 and leaves the balance
// unchanged; every other valid request returns 200 with the updated
// {user_id, balance}.
func (h *WalletHandler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var body struct {
		Action string `json:"action"`
		Amount int64  `json:"amount"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Action != "credit" && body.Action != "debit" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "action must be credit or debit"})
	}
	if body.Amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must not be negative"})
	}

	if !h.Wallets.Exists(id) {
		if !h.Users.Exists(id) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "user not found"})
		}
		h.Wallets.CreateIfAbsent(id)
	}

	var bal int64
	switch body.Action {
	case "credit":
		bal, err = h.Wallets.Credit(id, body.Amount)
	case "debit":
		bal, err = h.Wallets.Debit(id, body.Amount)
	}
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientFunds) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "insufficient balance"})
		}
		if errors.Is(err, repository.ErrInvalidAmount) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "wallet update failed"})
	}
	return c.JSON(http.StatusOK, model.Wallet{UserID: id, Balance: bal})
}

// Delete handles DELETE /wallets/:user_id, returning 200 or 404 when
// the user has no wallet.
func (h *WalletHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if err := h.Wallets.Delete(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "wallet not found"})
	}
	return c.NoContent(http.StatusOK)
}

// DeleteAll handles DELETE /wallets.  Always 200.
func (h *WalletHandler) DeleteAll(c echo.Context) error {
	h.Wallets.DeleteAll()
	return c.NoContent(http.StatusOK)
}
