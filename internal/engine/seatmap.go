package engine

import (
	"fmt"
	"sort"

	"github.com/iliyamo/theatre-reservation/internal/model"
)

// SeatMap tracks which seat labels are booked per show.  Two backends
// exist: OpenSeatMap, where any previously unbooked label string is
// bookable, and GridSeatMap, where the set of valid labels is fixed by
// the show's seating layout at construction time.
//
// Implementations are not safe for concurrent use on their own; the
// Engine's lock covers every call into the seat map, so check-then-act
// sequences stay in one critical section.
type SeatMap interface {
	// IsBooked reports whether the label is currently booked for the
	// show.  Unknown show IDs behave as "nothing booked".
	IsBooked(showID uint64, label string) bool
	// Booked returns a sorted snapshot of the show's booked labels.
	Booked(showID uint64) []string
	// Validate checks that every label is bookable in principle for
	// the show.  The grid backend returns *InvalidSeatError for labels
	// outside the layout; the open backend always succeeds.
	Validate(showID uint64, labels []string) error
	// MarkBooked and MarkFree mutate booking state.  They are called
	// exclusively by the Engine inside its critical section.
	MarkBooked(showID uint64, labels []string)
	MarkFree(showID uint64, labels []string)
	// Capacity returns the total number of seats across all shows, or
	// 0 when the backend has no fixed layout.
	Capacity() int
}

// OpenSeatMap is the open-label backend: seats are an open string set
// per show with no pre-enumerated grid.
type OpenSeatMap struct {
	booked map[uint64]map[string]struct{}
}

// NewOpenSeatMap returns an empty open-label seat map.
func NewOpenSeatMap() *OpenSeatMap {
	return &OpenSeatMap{booked: make(map[uint64]map[string]struct{})}
}

func (m *OpenSeatMap) IsBooked(showID uint64, label string) bool {
	_, ok := m.booked[showID][label]
	return ok
}

func (m *OpenSeatMap) Booked(showID uint64) []string {
	return sortedLabels(m.booked[showID])
}

// Validate always succeeds: any label string is bookable.
func (m *OpenSeatMap) Validate(uint64, []string) error { return nil }

func (m *OpenSeatMap) MarkBooked(showID uint64, labels []string) {
	set, ok := m.booked[showID]
	if !ok {
		set = make(map[string]struct{}, len(labels))
		m.booked[showID] = set
	}
	for _, l := range labels {
		set[l] = struct{}{}
	}
}

func (m *OpenSeatMap) MarkFree(showID uint64, labels []string) {
	set, ok := m.booked[showID]
	if !ok {
		return
	}
	for _, l := range labels {
		delete(set, l)
	}
}

func (m *OpenSeatMap) Capacity() int { return 0 }

// GridSeatMap is the fixed-layout backend.  Valid labels are derived
// from each show's SeatRows x SeatCols layout as "<row letter><seat
// number>" (rows A.., seats 1..), matching the physical hall plan.
type GridSeatMap struct {
	valid  map[uint64]map[string]struct{}
	booked map[uint64]map[string]struct{}
}

// NewGridSeatMap enumerates the seating grid of every show.  Shows
// without a layout (zero rows or columns) end up with no valid seats,
// so every booking attempt against them fails validation.
func NewGridSeatMap(shows []model.Show) *GridSeatMap {
	m := &GridSeatMap{
		valid:  make(map[uint64]map[string]struct{}, len(shows)),
		booked: make(map[uint64]map[string]struct{}, len(shows)),
	}
	for _, s := range shows {
		set := make(map[string]struct{}, int(s.SeatRows)*int(s.SeatCols))
		for r := uint32(0); r < s.SeatRows; r++ {
			for c := uint32(0); c < s.SeatCols; c++ {
				set[fmt.Sprintf("%c%d", 'A'+rune(r), c+1)] = struct{}{}
			}
		}
		m.valid[s.ID] = set
	}
	return m
}

func (m *GridSeatMap) IsBooked(showID uint64, label string) bool {
	_, ok := m.booked[showID][label]
	return ok
}

func (m *GridSeatMap) Booked(showID uint64) []string {
	return sortedLabels(m.booked[showID])
}

func (m *GridSeatMap) Validate(showID uint64, labels []string) error {
	valid := m.valid[showID]
	for _, l := range labels {
		if _, ok := valid[l]; !ok {
			return &InvalidSeatError{Label: l}
		}
	}
	return nil
}

func (m *GridSeatMap) MarkBooked(showID uint64, labels []string) {
	set, ok := m.booked[showID]
	if !ok {
		set = make(map[string]struct{}, len(labels))
		m.booked[showID] = set
	}
	for _, l := range labels {
		set[l] = struct{}{}
	}
}

func (m *GridSeatMap) MarkFree(showID uint64, labels []string) {
	set, ok := m.booked[showID]
	if !ok {
		return
	}
	for _, l := range labels {
		delete(set, l)
	}
}

func (m *GridSeatMap) Capacity() int {
	total := 0
	for _, set := range m.valid {
		total += len(set)
	}
	return total
}

func sortedLabels(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for l := range set {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
