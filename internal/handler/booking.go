package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/show-booking/internal/repository"
	"github.com/iliyamo/show-booking/internal/service"
)

// BookingHandler exposes the booking coordinator over HTTP.  Declined
// bookings (sold out, insufficient funds) and validation failures are
// all reported as 400.  A declined booking is a normal business
// outcome, never a server error.
type BookingHandler struct {
	Bookings *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	if bookings == nil {
		panic("nil service passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings}
}

// ListByUser handles GET /bookings/users/:user_id, returning the
// user's bookings as [{id, show_id, user_id, seats_booked}].  Users
// without bookings get an empty list.
func (h *BookingHandler) ListByUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	return c.JSON(http.StatusOK, h.Bookings.ListByUser(id))
}

// Create handles POST /bookings with a body of
// {show_id, user_id, seats_booked}.  On commit it returns 200 with the
// booking record; an unknown show or user, a non-positive seat count,
// a sold-out show or an insufficient balance all return 400 with no
// net change to seats or balance.
func (h *BookingHandler) Create(c echo.Context) error {
	var body struct {
		ShowID      int64 `json:"show_id"`
		UserID      int64 `json:"user_id"`
		SeatsBooked int   `json:"seats_booked"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	b, err := h.Bookings.Create(c.Request().Context(), body.ShowID, body.UserID, body.SeatsBooked)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidAmount):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats_booked must be positive"})
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrSoldOut):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "not enough seats available"})
		case errors.Is(err, repository.ErrInsufficientFunds):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "insufficient balance"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}
	return c.JSON(http.StatusOK, b)
}

// DeleteByUser handles DELETE /bookings/users/:user_id, cancelling all
// of the user's bookings.  200 when at least one was cancelled, 404
// when the user had none.
func (h *BookingHandler) DeleteByUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if err := h.Bookings.CancelByUser(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no bookings for user"})
	}
	return c.NoContent(http.StatusOK)
}

// DeleteByUserAndShow handles
// DELETE /bookings/users/:user_id/shows/:show_id, cancelling the
// user's bookings in that show.  200/404 as above.
func (h *BookingHandler) DeleteByUserAndShow(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	showID, err := strconv.ParseInt(c.Param("show_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	if err := h.Bookings.CancelByUserAndShow(c.Request().Context(), userID, showID); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no bookings for user in show"})
	}
	return c.NoContent(http.StatusOK)
}

// DeleteAll handles DELETE /bookings, cancelling every booking and
// returning all seats and amounts.  Always 200.
func (h *BookingHandler) DeleteAll(c echo.Context) error {
	h.Bookings.CancelAll(c.Request().Context())
	return c.NoContent(http.StatusOK)
}
