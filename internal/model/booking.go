package model

import "time"

// Booking records a confirmed reservation of one or more seats for a
// show.  Bookings are created only by a successful reservation attempt
// and removed only by a successful cancellation; they are never edited
// in place.  The struct is JSON-serializable so it can be exported or
// published as an event without an intermediate representation.
//
// Fields:
//  ID           – unique booking identifier (random UUID).
//  ShowID       – show the seats belong to.
//  CustomerName – name supplied by the customer.
//  Email        – optional contact address.
//  Seats        – seat labels held by this booking, in request order,
//                 non-empty and unique within the booking.
//  TotalAmount  – total charged for the booking.
//  CreatedAt    – when the booking was confirmed (UTC).
type Booking struct {
	ID           string    `json:"id"`
	ShowID       uint64    `json:"show_id"`
	CustomerName string    `json:"customer_name"`
	Email        string    `json:"email,omitempty"`
	Seats        []string  `json:"seats"`
	TotalAmount  float64   `json:"total_amount"`
	CreatedAt    time.Time `json:"created_at"`
}
