package model

// Show represents a single scheduled performance or screening that
// customers can book seats for.  Shows are loaded once at startup from
// the catalog and never mutated afterwards.  Each show is uniquely
// identified by its ID.
//
// Fields:
//  ID       – unique identifier of the show.
//  Title    – movie or performance title.
//  Hall     – name of the hall where the show takes place.
//  Schedule – human-readable date/time slot (e.g. "15-03-2024 18:00").
//  Price    – flat per-seat price.
//  SeatRows – number of seating rows; used only by the grid seat map.
//  SeatCols – number of seats per row; used only by the grid seat map.
type Show struct {
	ID       uint64  `json:"id"`
	Title    string  `json:"title"`
	Hall     string  `json:"hall"`
	Schedule string  `json:"schedule"`
	Price    float64 `json:"price"`
	SeatRows uint32  `json:"seat_rows,omitempty"`
	SeatCols uint32  `json:"seat_cols,omitempty"`
}
