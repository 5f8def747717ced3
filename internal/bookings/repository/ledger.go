package repository

import (
	"iter"
	"sync"

	"hotelbooking/pkg/model"
)

// Ledger is the append-only booking history.
type Ledger interface {
	Append(booking model.Booking)
	// BookingsForRoom yields the room's bookings oldest first. Every range
	// over the returned sequence reads the ledger afresh.
	BookingsForRoom(roomNumber int) iter.Seq[model.Booking]
	// All yields every booking oldest first, re-read on each range.
	All() iter.Seq[model.Booking]
	Len() int
}

type memoryLedger struct {
	mu       sync.RWMutex
	bookings []model.Booking
	byRoom   map[int][]int
}

func NewMemoryLedger() Ledger {
	return &memoryLedger{
		byRoom: make(map[int][]int),
	}
}

func (l *memoryLedger) Append(booking model.Booking) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.byRoom[booking.RoomNumber] = append(l.byRoom[booking.RoomNumber], len(l.bookings))
	l.bookings = append(l.bookings, booking)
}

// Existing slots are never written again, so slices captured under the
// read lock stay valid after it is released and yield can run unlocked.
func (l *memoryLedger) BookingsForRoom(roomNumber int) iter.Seq[model.Booking] {
	return func(yield func(model.Booking) bool) {
		l.mu.RLock()
		bookings := l.bookings
		indexes := l.byRoom[roomNumber]
		l.mu.RUnlock()

		for _, i := range indexes {
			if !yield(bookings[i]) {
				return
			}
		}
	}
}

func (l *memoryLedger) All() iter.Seq[model.Booking] {
	return func(yield func(model.Booking) bool) {
		l.mu.RLock()
		bookings := l.bookings
		l.mu.RUnlock()

		for _, b := range bookings {
			if !yield(b) {
				return
			}
		}
	}
}

func (l *memoryLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.bookings)
}
