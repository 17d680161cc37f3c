// Package engine implements the seat-reservation core: the seat map,
// the booking ledger and the operations that mutate them.  This file
// defines the error values the engine returns to callers.  Handlers
// distinguish them with errors.Is / errors.As and translate them into
// HTTP status codes; none of these conditions are fatal to the process.
package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a booking request is malformed:
// blank customer name, empty seat list, or blank seat labels.  Handlers
// should translate this into an HTTP 400 response.
var ErrInvalidInput = errors.New("invalid input")

// ErrBookingNotFound is returned when a cancellation or lookup targets
// a booking ID that is not in the ledger.  Handlers should translate
// this into an HTTP 404 response.
var ErrBookingNotFound = errors.New("booking not found")

// SeatUnavailableError reports a booking conflict: the named seat was
// already booked when the request was checked.  The whole attempt is
// aborted; no seat from the request is committed.
type SeatUnavailableError struct {
	Label string
}

func (e *SeatUnavailableError) Error() string {
	return fmt.Sprintf("seat %s is no longer available", e.Label)
}

// InvalidSeatError reports a seat label outside a show's defined
// layout.  Only the grid seat map backend produces it; the open
// backend accepts any label.
type InvalidSeatError struct {
	Label string
}

func (e *InvalidSeatError) Error() string {
	return fmt.Sprintf("seat %s does not exist in this hall", e.Label)
}
