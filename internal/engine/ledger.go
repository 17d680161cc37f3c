package engine

import "github.com/iliyamo/theatre-reservation/internal/model"

// ledger is the append/remove log of live bookings.  It keeps both an
// index by booking ID and the insertion order so listings are stable.
// The ledger is owned by the Engine and only touched under its lock.
type ledger struct {
	byID  map[string]model.Booking
	order []string
}

func newLedger() *ledger {
	return &ledger{byID: make(map[string]model.Booking)}
}

func (l *ledger) append(b model.Booking) {
	l.byID[b.ID] = b
	l.order = append(l.order, b.ID)
}

// remove deletes the booking with the given ID and returns it.  The
// second return value reports whether the booking existed.
func (l *ledger) remove(id string) (model.Booking, bool) {
	b, ok := l.byID[id]
	if !ok {
		return model.Booking{}, false
	}
	delete(l.byID, id)
	for i, oid := range l.order {
		if oid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return b, true
}

func (l *ledger) get(id string) (model.Booking, bool) {
	b, ok := l.byID[id]
	return b, ok
}

// all returns a snapshot of every live booking in insertion order.
func (l *ledger) all() []model.Booking {
	out := make([]model.Booking, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.byID[id])
	}
	return out
}

func (l *ledger) len() int { return len(l.byID) }
