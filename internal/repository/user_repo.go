package repository

import (
	"sort"
	"sync"

	"github.com/iliyamo/show-booking/internal/model"
)

// UserRepo is the identity registry.  It assigns sequential integer
// identifiers, enforces email uniqueness and answers existence checks
// for the wallet and booking layers.  All state lives in memory; a
// single RWMutex is enough here because every operation is a map
// lookup or insert with no per-entry critical section to speak of.
type UserRepo struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]model.User
	emails map[string]int64
}

// NewUserRepo constructs an empty registry.  Identifiers start at 1.
func NewUserRepo() *UserRepo {
	return &UserRepo{
		nextID: 1,
		users:  make(map[int64]model.User),
		emails: make(map[string]int64),
	}
}

// Create registers a new user and returns it with its assigned id.
// Returns ErrDuplicateEmail if the email address is already taken.
func (r *UserRepo) Create(name, email string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.emails[email]; taken {
		return model.User{}, ErrDuplicateEmail
	}
	u := model.User{ID: r.nextID, Name: name, Email: email}
	r.nextID++
	r.users[u.ID] = u
	r.emails[email] = u.ID
	return u, nil
}

// Get returns the user with the given id or ErrNotFound.
func (r *UserRepo) Get(id int64) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

// Exists reports whether a user with the given id is registered.
func (r *UserRepo) Exists(id int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.users[id]
	return ok
}

// Delete removes the user with the given id.  Deleting an unknown id
// returns ErrNotFound and changes nothing.  Cascading cleanup of the
// user's wallet and bookings is the caller's responsibility; the
// registry only owns the identity records.
func (r *UserRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	delete(r.emails, u.Email)
	return nil
}

// IDs returns all registered user ids in ascending order.  Used by the
// full-reset path to fan the cascade out over every user.
func (r *UserRepo) IDs() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// DeleteAll removes every user.  The id sequence is not reset so
// identifiers stay unique for the process lifetime.
func (r *UserRepo) DeleteAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = make(map[int64]model.User)
	r.emails = make(map[string]int64)
}
