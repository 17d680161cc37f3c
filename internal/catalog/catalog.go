// Package catalog holds the static list of shows available for booking.
// The catalog is loaded once at process start and is read-only for the
// lifetime of the process; the reservation engine treats it purely as
// input for show lookups and pricing.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/iliyamo/theatre-reservation/internal/model"
)

// ErrShowNotFound is returned when a show lookup yields no entry.
var ErrShowNotFound = errors.New("show not found")

// Catalog is an immutable, ordered collection of shows.  List order is
// insertion order of the source data.
type Catalog struct {
	shows []model.Show
	byID  map[uint64]model.Show
}

// New builds a Catalog from the given shows.  Duplicate show IDs are
// rejected because every booking references its show by ID.
func New(shows []model.Show) (*Catalog, error) {
	c := &Catalog{
		shows: make([]model.Show, 0, len(shows)),
		byID:  make(map[uint64]model.Show, len(shows)),
	}
	for _, s := range shows {
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("duplicate show id %d", s.ID)
		}
		c.byID[s.ID] = s
		c.shows = append(c.shows, s)
	}
	return c, nil
}

// LoadFile reads a JSON array of shows from path and builds a Catalog.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var shows []model.Show
	if err := json.Unmarshal(data, &shows); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(shows)
}

// Default returns the built-in demo catalog.  Every show uses a 4x5
// seating layout (rows A-D, seats 1-5); the layout is only enforced by
// the grid seat map backend.
func Default() *Catalog {
	c, err := New([]model.Show{
		{ID: 1, Title: "Dune: Part Two", Hall: "Hall 1", Schedule: "15-03-2024 18:00", Price: 12.5, SeatRows: 4, SeatCols: 5},
		{ID: 2, Title: "Oppenheimer", Hall: "Hall 2", Schedule: "20-03-2024 20:30", Price: 15.0, SeatRows: 4, SeatCols: 5},
		{ID: 3, Title: "Barbie", Hall: "Hall 3", Schedule: "22-03-2024 19:00", Price: 12.0, SeatRows: 4, SeatCols: 5},
		{ID: 4, Title: "Deadpool & Wolverine", Hall: "Hall 4", Schedule: "25-03-2024 21:00", Price: 12.5, SeatRows: 4, SeatCols: 5},
		{ID: 5, Title: "Inside Out 2", Hall: "Hall 5", Schedule: "28-03-2024 17:30", Price: 12.5, SeatRows: 4, SeatCols: 5},
	})
	if err != nil {
		panic(err) // static data, cannot fail
	}
	return c
}

// List returns all shows in stable insertion order.  The returned slice
// is a copy; callers may not mutate catalog state through it.
func (c *Catalog) List() []model.Show {
	out := make([]model.Show, len(c.shows))
	copy(out, c.shows)
	return out
}

// Get returns the show with the given ID, or ErrShowNotFound.
func (c *Catalog) Get(id uint64) (model.Show, error) {
	s, ok := c.byID[id]
	if !ok {
		return model.Show{}, ErrShowNotFound
	}
	return s, nil
}
