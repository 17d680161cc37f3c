// Package handler exposes the HTTP surface of the reservation service.
// Handlers translate requests into engine calls and engine errors into
// HTTP status codes; no reservation logic lives here.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theatre-reservation/internal/catalog"
)

// GetShows handles GET /v1/shows.  It returns the full catalog in
// stable order.
func (h *BookingHandler) GetShows(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Catalog.List()})
}

// GetShow handles GET /v1/shows/:id.
func (h *BookingHandler) GetShow(c echo.Context) error {
	id, err := showID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	show, err := h.Catalog.Get(id)
	if err != nil {
		if errors.Is(err, catalog.ErrShowNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog error"})
	}
	return c.JSON(http.StatusOK, show)
}

// GetShowSeats handles GET /v1/shows/:id/seats.  It returns a
// consistent snapshot of the booked seat labels so the caller can
// render availability.
func (h *BookingHandler) GetShowSeats(c echo.Context) error {
	id, err := showID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	if _, err := h.Catalog.Get(id); err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"booked_seats": h.Engine.BookedSeats(id)})
}

func showID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid show id")
	}
	return id, nil
}
