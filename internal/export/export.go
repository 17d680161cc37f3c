// Package export serializes booking snapshots to files.  All functions
// operate on already-returned engine data; nothing here runs inside the
// engine's critical section.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iliyamo/theatre-reservation/internal/model"
)

// WriteBookings writes the bookings snapshot as pretty-printed JSON to
// path, replacing any previous export.
func WriteBookings(path string, bookings []model.Booking) error {
	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal bookings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// WriteTicket writes a plain-text ticket for a confirmed booking into
// dir and returns the file path.  The directory is created on demand.
func WriteTicket(dir string, show model.Show, b model.Booking) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir tickets: %w", err)
	}
	content := fmt.Sprintf("Show: %s\nHall: %s\nSchedule: %s\nSeats: %s\nTotal: %.2f\nID: %s\n",
		show.Title, show.Hall, show.Schedule, strings.Join(b.Seats, ", "), b.TotalAmount, b.ID)
	path := filepath.Join(dir, "ticket_"+b.ID+".txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write ticket: %w", err)
	}
	return path, nil
}
