package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/nmartinas/theater-box-office/internal/model"
)

// ReservationStore keeps the day's reservations in memory, keyed by a
// generated id. The schedule is read-mostly after construction, but
// reservations mutate (party size, showing), so every mutation runs under
// the store's write lock to keep a single-writer discipline per entry.
// Nothing is persisted; the store lives exactly as long as the day's run.
type ReservationStore struct {
	mu   sync.RWMutex
	byID map[string]*model.Reservation
	ids  []string // creation order, for stable listing
}

// Entry pairs a reservation with its store id.
type Entry struct {
	ID          string
	Reservation *model.Reservation
}

// NewReservationStore returns an empty store.
func NewReservationStore() *ReservationStore {
	return &ReservationStore{byID: make(map[string]*model.Reservation)}
}

// Add registers a reservation and returns its generated id.
func (s *ReservationStore) Add(r *model.Reservation) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.byID[id] = r
	s.ids = append(s.ids, id)
	s.mu.Unlock()
	return id
}

// Get returns the reservation for id, or ErrReservationNotFound.
func (s *ReservationStore) Get(id string) (*model.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.byID[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	return r, nil
}

// List returns all reservations in creation order.
func (s *ReservationStore) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entries := make([]Entry, 0, len(s.ids))
	for _, id := range s.ids {
		entries = append(entries, Entry{ID: id, Reservation: s.byID[id]})
	}
	return entries
}

// Update applies fn to the reservation for id under the write lock, so
// concurrent readers never observe a half-applied change. fn's error is
// returned unchanged and leaves the reservation as fn left it.
func (s *ReservationStore) Update(id string, fn func(*model.Reservation) error) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.byID[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	if err := fn(r); err != nil {
		return nil, err
	}
	return r, nil
}
