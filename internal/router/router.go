// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theatre-reservation/internal/handler"
)

// RegisterRoutes wires every endpoint of the reservation API onto the
// provided Echo instance.  The health check lives outside the /v1
// prefix so load balancers can probe it cheaply.
func RegisterRoutes(e *echo.Echo, h *handler.BookingHandler) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	// Catalog browsing and seat availability.
	v1.GET("/shows", h.GetShows)
	v1.GET("/shows/:id", h.GetShow)
	v1.GET("/shows/:id/seats", h.GetShowSeats)
	// Reservation operations.
	v1.POST("/shows/:id/bookings", h.CreateBooking)
	v1.GET("/bookings", h.GetBookings)
	v1.GET("/bookings/:id", h.GetBooking)
	v1.DELETE("/bookings/:id", h.CancelBooking)
	// Records and statistics views.
	v1.GET("/stats", h.GetStats)
	v1.POST("/bookings/export", h.ExportBookings)
}
