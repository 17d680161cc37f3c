package engine

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/theatre-reservation/internal/catalog"
	"github.com/iliyamo/theatre-reservation/internal/model"
)

// BookingRequest carries everything the engine needs to attempt a
// reservation.  Total is optional: when nil the engine prices the
// booking itself as show price x seat count; when set, the caller's
// externally computed total is recorded as-is.
type BookingRequest struct {
	ShowID       uint64
	CustomerName string
	Email        string
	Seats        []string
	Total        *float64
}

// Stats aggregates booking figures for the statistics view.  Capacity
// and availability are only reported by the grid backend; the open
// backend has no fixed seat count, so both stay zero there.
type Stats struct {
	TotalBookings  int     `json:"total_bookings"`
	TotalRevenue   float64 `json:"total_revenue"`
	SeatsSold      int     `json:"seats_sold"`
	SeatCapacity   int     `json:"seat_capacity,omitempty"`
	SeatsAvailable int     `json:"seats_available,omitempty"`
}

// Engine is the reservation core.  It exclusively owns the seat map and
// the booking ledger; the catalog is shared read-only input.  A single
// RWMutex covers both structures so that conflict check and commit of a
// booking attempt form one critical section, and cancellation can never
// interleave with a booking on the same show.  No I/O ever happens
// under the lock.
//
// An Engine is constructed once at startup and passed by handle to all
// callers; there is no package-level instance.
type Engine struct {
	mu       sync.RWMutex
	catalog  *catalog.Catalog
	seats    SeatMap
	bookings *ledger

	now   func() time.Time
	newID func() string
}

// New returns an Engine over the given catalog and seat map backend.
func New(cat *catalog.Catalog, seats SeatMap) *Engine {
	return &Engine{
		catalog:  cat,
		seats:    seats,
		bookings: newLedger(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

// AttemptBooking validates the request, checks every requested seat for
// conflicts and, only if all are free, marks them booked and appends a
// new Booking to the ledger.  The check and the commit happen under one
// lock hold: either every requested seat becomes booked or none does,
// and no concurrent attempt can observe a partial state.
//
// Returned errors: catalog.ErrShowNotFound, ErrInvalidInput,
// *InvalidSeatError (grid backend) and *SeatUnavailableError.  On any
// error the seat map and ledger are unchanged.
func (e *Engine) AttemptBooking(req BookingRequest) (model.Booking, error) {
	show, err := e.catalog.Get(req.ShowID)
	if err != nil {
		return model.Booking{}, err
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return model.Booking{}, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	seats, err := normalizeSeats(req.Seats)
	if err != nil {
		return model.Booking{}, err
	}
	// Layout validity is static data, safe to check outside the lock.
	if err := e.seats.Validate(show.ID, seats); err != nil {
		return model.Booking{}, err
	}

	total := show.Price * float64(len(seats))
	if req.Total != nil {
		total = *req.Total
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, label := range seats {
		if e.seats.IsBooked(show.ID, label) {
			return model.Booking{}, &SeatUnavailableError{Label: label}
		}
	}
	e.seats.MarkBooked(show.ID, seats)

	b := model.Booking{
		ID:           e.newID(),
		ShowID:       show.ID,
		CustomerName: strings.TrimSpace(req.CustomerName),
		Email:        strings.TrimSpace(req.Email),
		Seats:        seats,
		TotalAmount:  total,
		CreatedAt:    e.now(),
	}
	e.bookings.append(b)
	return b, nil
}

// CancelBooking removes the booking with the given ID from the ledger
// and frees exactly the seats it held.  It returns the removed booking,
// or ErrBookingNotFound when the ID is not in the ledger (including a
// second cancellation of the same ID).
func (e *Engine) CancelBooking(id string) (model.Booking, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	b, ok := e.bookings.remove(id)
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	e.seats.MarkFree(b.ShowID, b.Seats)
	return b, nil
}

// BookedSeats returns a consistent point-in-time snapshot of the booked
// seat labels for a show, sorted.  Unknown show IDs yield an empty set.
func (e *Engine) BookedSeats(showID uint64) []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.seats.Booked(showID)
}

// Booking returns a single live booking by ID.
func (e *Engine) Booking(id string) (model.Booking, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	b, ok := e.bookings.get(id)
	if !ok {
		return model.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

// Bookings returns a snapshot of all live bookings in creation order.
func (e *Engine) Bookings() []model.Booking {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.bookings.all()
}

// Stats computes aggregate figures over the current ledger.
func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	st := Stats{TotalBookings: e.bookings.len()}
	for _, b := range e.bookings.all() {
		st.TotalRevenue += b.TotalAmount
		st.SeatsSold += len(b.Seats)
	}
	if capacity := e.seats.Capacity(); capacity > 0 {
		st.SeatCapacity = capacity
		st.SeatsAvailable = capacity - st.SeatsSold
	}
	return st
}

// normalizeSeats trims labels and drops duplicates while preserving the
// request order.  An empty result is invalid input.
func normalizeSeats(labels []string) ([]string, error) {
	out := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: at least one seat is required", ErrInvalidInput)
	}
	return out, nil
}
