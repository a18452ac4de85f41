package repository

import (
	"sort"
	"sync"

	"github.com/iliyamo/show-booking/internal/model"
)

// BookingRepo stores committed booking records.  The booking service
// is its only writer: records are created after a successful debit and
// removed one by one as cancellations complete, so a crash mid-cancel
// never leaves a record whose seats and money were already returned.
type BookingRepo struct {
	mu       sync.RWMutex
	nextID   int64
	bookings map[int64]model.Booking
}

// NewBookingRepo constructs an empty booking store.  Identifiers
// start at 1.
func NewBookingRepo() *BookingRepo {
	return &BookingRepo{nextID: 1, bookings: make(map[int64]model.Booking)}
}

// Create records a committed booking and returns it with its id.
func (r *BookingRepo) Create(showID, userID int64, seats int, amount int64) model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := model.Booking{
		ID:            r.nextID,
		ShowID:        showID,
		UserID:        userID,
		SeatsBooked:   seats,
		AmountCharged: amount,
	}
	r.nextID++
	r.bookings[b.ID] = b
	return b
}

// Remove deletes the booking with the given id, if present.
func (r *BookingRepo) Remove(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bookings, id)
}

// ByUser returns the user's bookings ordered by id.  A user with no
// bookings yields an empty slice, never nil, so the handler can always
// marshal it as a JSON array.
func (r *BookingRepo) ByUser(userID int64) []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sortByID(out)
	return out
}

// ByUserAndShow returns the user's bookings in one show, ordered by id.
func (r *BookingRepo) ByUserAndShow(userID, showID int64) []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID && b.ShowID == showID {
			out = append(out, b)
		}
	}
	sortByID(out)
	return out
}

// All returns every booking ordered by id.
func (r *BookingRepo) All() []model.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	sortByID(out)
	return out
}

func sortByID(bs []model.Booking) {
	sort.Slice(bs, func(i, j int) bool { return bs[i].ID < bs[j].ID })
}
