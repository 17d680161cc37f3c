package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/theatre-reservation/internal/catalog"
	"github.com/iliyamo/theatre-reservation/internal/engine"
	"github.com/iliyamo/theatre-reservation/internal/export"
	"github.com/iliyamo/theatre-reservation/internal/queue"
	queue_publisher "github.com/iliyamo/theatre-reservation/internal/service"
)

// BookingHandler serves the reservation API.  It holds the engine
// handle and the catalog plus the side-effect settings (event
// publishing, ticket files, export target).  All side effects run after
// the engine call has returned, on already-committed data.
type BookingHandler struct {
	Catalog       *catalog.Catalog
	Engine        *engine.Engine
	EventsEnabled bool
	ExportFile    string
	TicketsDir    string
}

// NewBookingHandler constructs a BookingHandler.  Catalog and engine
// must be non-nil.
func NewBookingHandler(cat *catalog.Catalog, eng *engine.Engine) *BookingHandler {
	if cat == nil || eng == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Catalog: cat, Engine: eng}
}

// bookingRequest is the JSON body of POST /v1/shows/:id/bookings.
// Total is optional; when omitted the engine prices the booking from
// the show's per-seat price.
type bookingRequest struct {
	CustomerName string   `json:"customer_name"`
	Email        string   `json:"email"`
	Seats        []string `json:"seats"`
	Total        *float64 `json:"total"`
}

// CreateBooking handles POST /v1/shows/:id/bookings.  On success it
// returns 201 with the new booking; conflicts return 409 with the
// contested seat label so the client can offer an alternative.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	id, err := showID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid show id"})
	}
	var body bookingRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	booking, err := h.Engine.AttemptBooking(engine.BookingRequest{
		ShowID:       id,
		CustomerName: body.CustomerName,
		Email:        body.Email,
		Seats:        body.Seats,
		Total:        body.Total,
	})
	if err != nil {
		var unavailable *engine.SeatUnavailableError
		var invalidSeat *engine.InvalidSeatError
		switch {
		case errors.Is(err, catalog.ErrShowNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "show not found"})
		case errors.As(err, &unavailable):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error(), "seat": unavailable.Label})
		case errors.As(err, &invalidSeat):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error(), "seat": invalidSeat.Label})
		case errors.Is(err, engine.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
		}
	}

	// Side effects run on the committed booking, outside the engine.
	show, _ := h.Catalog.Get(booking.ShowID)
	if h.TicketsDir != "" {
		if _, err := export.WriteTicket(h.TicketsDir, show, booking); err != nil {
			log.Printf("ticket write failed for booking %s: %v", booking.ID, err)
		}
	}
	if h.EventsEnabled {
		ev := queue.BookingConfirmedEvent{
			BookingID:    booking.ID,
			ShowID:       booking.ShowID,
			ShowTitle:    show.Title,
			Hall:         show.Hall,
			CustomerName: booking.CustomerName,
			Email:        booking.Email,
			Seats:        booking.Seats,
			TotalAmount:  booking.TotalAmount,
			ConfirmedAt:  booking.CreatedAt.Format(time.RFC3339),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = queue_publisher.PublishBookingConfirmed(ctx, ev)
		}()
	}

	return c.JSON(http.StatusCreated, booking)
}

// CancelBooking handles DELETE /v1/bookings/:id.  It returns the
// removed booking so the client can show what was cancelled.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	id := c.Param("id")
	booking, err := h.Engine.CancelBooking(id)
	if err != nil {
		if errors.Is(err, engine.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancellation failed"})
	}

	if h.EventsEnabled {
		ev := queue.BookingCancelledEvent{
			BookingID:   booking.ID,
			ShowID:      booking.ShowID,
			Seats:       booking.Seats,
			CancelledAt: time.Now().UTC().Format(time.RFC3339),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = queue_publisher.PublishBookingCancelled(ctx, ev)
		}()
	}

	return c.JSON(http.StatusOK, booking)
}

// GetBookings handles GET /v1/bookings for the records view.
func (h *BookingHandler) GetBookings(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Engine.Bookings()})
}

// GetBooking handles GET /v1/bookings/:id.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.Engine.Booking(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, booking)
}

// GetStats handles GET /v1/stats for the statistics view.
func (h *BookingHandler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Engine.Stats())
}

// ExportBookings handles POST /v1/bookings/export.  It takes a ledger
// snapshot and writes it to the configured export file; the file write
// happens on the snapshot, after the engine read has completed.
func (h *BookingHandler) ExportBookings(c echo.Context) error {
	bookings := h.Engine.Bookings()
	if err := export.WriteBookings(h.ExportFile, bookings); err != nil {
		log.Printf("export failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"file": h.ExportFile, "count": len(bookings)})
}
