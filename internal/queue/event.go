// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names used for booking lifecycle events.
const (
	BookingConfirmedQueue = "booking.confirmed"
	BookingCancelledQueue = "booking.cancelled"
)

// BookingConfirmedEvent is published when a reservation is successfully
// committed.  It carries enough information for downstream consumers to
// log, notify or feed analytics without calling back into the engine.
type BookingConfirmedEvent struct {
	BookingID    string   `json:"booking_id"`
	ShowID       uint64   `json:"show_id"`
	ShowTitle    string   `json:"show_title"`
	Hall         string   `json:"hall"`
	CustomerName string   `json:"customer_name"`
	Email        string   `json:"email,omitempty"`
	Seats        []string `json:"seats"`
	TotalAmount  float64  `json:"total_amount"`
	ConfirmedAt  string   `json:"confirmed_at"`
}

// BookingCancelledEvent is published when a booking is removed from the
// ledger and its seats are released.
type BookingCancelledEvent struct {
	BookingID   string   `json:"booking_id"`
	ShowID      uint64   `json:"show_id"`
	Seats       []string `json:"seats"`
	CancelledAt string   `json:"cancelled_at"`
}
