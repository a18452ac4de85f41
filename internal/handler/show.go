package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/show-booking/internal/repository"
)

// ShowHandler exposes the read-only browse surface: theatres and the
// shows they host.  Seat counts reflect the inventory at read time.
type ShowHandler struct {
	Shows *repository.ShowRepo
}

// NewShowHandler constructs a ShowHandler.
func NewShowHandler(shows *repository.ShowRepo) *ShowHandler {
	if shows == nil {
		panic("nil repository passed to NewShowHandler")
	}
	return &ShowHandler{Shows: shows}
}

// Theatres handles GET /theatres, returning every theatre as
// [{id, name, location}].  An empty list when none are seeded.
func (h *ShowHandler) Theatres(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Shows.Theatres())
}

// ByTheatre handles GET /shows/theatres/:theatre_id, returning the
// theatre's shows as [{id, theatre_id, title, price, seats_available}].
// 404 for an unknown theatre, an empty list for one without shows.
func (h *ShowHandler) ByTheatre(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("theatre_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid theatre id"})
	}
	shows, err := h.Shows.ByTheatre(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "theatre not found"})
	}
	return c.JSON(http.StatusOK, shows)
}

// Get handles GET /shows/:show_id, returning
// {id, theatre_id, title, price, seats_available} or 404.
func (h *ShowHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("show_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	show, err := h.Shows.Get(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
	}
	return c.JSON(http.StatusOK, show)
}
