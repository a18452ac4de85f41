package repository

import (
	"sort"
	"sync"

	"github.com/iliyamo/show-booking/internal/model"
)

// showEntry pairs a show with its original capacity and the mutex that
// serializes seat movements.  SeatsAvailable only changes under the
// entry lock, keeping 0 <= SeatsAvailable <= capacity at all times.
type showEntry struct {
	mu       sync.Mutex
	show     model.Show
	capacity int
}

// ShowRepo is the seat inventory.  It also carries the theatre
// reference data because shows are always resolved against their
// theatre; both are seeded at startup and the theatre set never
// changes afterwards.  Locking follows the same discipline as the
// wallet ledger: the outer RWMutex guards the maps, each show's own
// mutex guards its seat count.
type ShowRepo struct {
	mu       sync.RWMutex
	shows    map[int64]*showEntry
	theatres map[int64]model.Theatre
}

// NewShowRepo constructs an empty inventory.
func NewShowRepo() *ShowRepo {
	return &ShowRepo{
		shows:    make(map[int64]*showEntry),
		theatres: make(map[int64]model.Theatre),
	}
}

// AddTheatre registers a theatre.  Seeding only; last write wins.
func (r *ShowRepo) AddTheatre(t model.Theatre) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.theatres[t.ID] = t
}

// AddShow registers a show.  The show's SeatsAvailable at registration
// becomes its original capacity, the upper bound every later release is
// checked against.  Seeding only; last write wins.
func (r *ShowRepo) AddShow(s model.Show) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shows[s.ID] = &showEntry{show: s, capacity: s.SeatsAvailable}
}

// Theatres returns all theatres ordered by id.
func (r *ShowRepo) Theatres() []model.Theatre {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Theatre, 0, len(r.theatres))
	for _, t := range r.theatres {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TheatreExists reports whether a theatre with the given id is known.
func (r *ShowRepo) TheatreExists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.theatres[id]
	return ok
}

// Get returns a snapshot of the show with the given id or ErrNotFound.
func (r *ShowRepo) Get(id int64) (model.Show, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.shows[id]
	if !ok {
		return model.Show{}, ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.show, nil
}

// ByTheatre returns snapshots of all shows in the given theatre,
// ordered by show id.  Returns ErrNotFound for an unknown theatre; a
// theatre with no shows yields an empty slice.
func (r *ShowRepo) ByTheatre(theatreID int64) ([]model.Show, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.theatres[theatreID]; !ok {
		return nil, ErrNotFound
	}
	out := make([]model.Show, 0)
	for _, e := range r.shows {
		e.mu.Lock()
		if e.show.TheatreID == theatreID {
			out = append(out, e.show)
		}
		e.mu.Unlock()
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Reserve takes count seats out of the show's available pool and
// returns the per-seat price recorded at decrement time.  If fewer
// than count seats are available the reservation is declined with
// ErrSoldOut and the pool is not touched.  Returns ErrInvalidAmount
// for non-positive counts and ErrNotFound for an unknown show.
func (r *ShowRepo) Reserve(id int64, count int) (int64, error) {
	if count <= 0 {
		return 0, ErrInvalidAmount
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.shows[id]
	if !ok {
		return 0, ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.show.SeatsAvailable < count {
		return 0, ErrSoldOut
	}
	e.show.SeatsAvailable -= count
	return e.show.Price, nil
}

// Release returns count seats to the show's available pool.  Releasing
// past the show's original capacity means some caller is giving back
// seats it never reserved; the release is refused with
// ErrInvariantViolation and the pool is not touched.
func (r *ShowRepo) Release(id int64, count int) error {
	if count <= 0 {
		return ErrInvalidAmount
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.shows[id]
	if !ok {
		return ErrNotFound
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.show.SeatsAvailable+count > e.capacity {
		return ErrInvariantViolation
	}
	e.show.SeatsAvailable += count
	return nil
}
