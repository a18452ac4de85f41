// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/show-booking/internal/handler"
)

// RegisterRoutes registers routes that need no dependencies.
// Currently it exposes only the health check.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers the user, wallet, show and booking surfaces.
// Routes mirror the original service contracts, so they live at the
// top level without a version prefix.  browseCache is applied to the
// theatre listing only: theatres are immutable reference data, while
// show and wallet reads must always reflect the live seat counts and
// balances.
func RegisterAPI(e *echo.Echo, u *handler.UserHandler, w *handler.WalletHandler, s *handler.ShowHandler, b *handler.BookingHandler, browseCache echo.MiddlewareFunc) {
	// User registry.
	e.POST("/users", u.Create)
	e.GET("/users/:user_id", u.Get)
	e.DELETE("/users/:user_id", u.Delete)
	e.DELETE("/users", u.DeleteAll)

	// Wallet ledger.
	e.GET("/wallets/:user_id", w.Get)
	e.PUT("/wallets/:user_id", w.Update)
	e.DELETE("/wallets/:user_id", w.Delete)
	e.DELETE("/wallets", w.DeleteAll)

	// Theatre and show browsing.
	e.GET("/theatres", s.Theatres, browseCache)
	e.GET("/shows/theatres/:theatre_id", s.ByTheatre)
	e.GET("/shows/:show_id", s.Get)

	// Bookings.
	e.GET("/bookings/users/:user_id", b.ListByUser)
	e.POST("/bookings", b.Create)
	e.DELETE("/bookings/users/:user_id", b.DeleteByUser)
	e.DELETE("/bookings/users/:user_id/shows/:show_id", b.DeleteByUserAndShow)
	e.DELETE("/bookings", b.DeleteAll)
}
