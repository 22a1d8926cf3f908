package appointment

import (
	"context"
	"fmt"
	"sync"

	"github.com/BruksfildServices01/appointment-scheduler/internal/httperr"
)

// Store is the canonical appointment set. Writers hold the write lock for
// the whole check-then-insert sequence; readers copy under the read lock.
type Store struct {
	mu     sync.RWMutex
	byID   map[string]Appointment
	bySlot map[slotKey]string
}

func NewStore() *Store {
	return &Store{
		byID:   make(map[string]Appointment),
		bySlot: make(map[slotKey]string),
	}
}

// Load replaces the contents with what repo holds.
func (s *Store) Load(ctx context.Context, repo Repository) error {
	aps, err := repo.ListAppointments(ctx)
	if err != nil {
		return fmt.Errorf("store: load: %w", err)
	}

	byID := make(map[string]Appointment, len(aps))
	bySlot := make(map[slotKey]string, len(aps))
	for _, ap := range aps {
		if _, dup := byID[ap.ID]; dup {
			return fmt.Errorf("store: load: duplicate id %q", ap.ID)
		}
		if other, taken := bySlot[ap.slot()]; taken {
			return fmt.Errorf("store: load: %s %s held by %q and %q", ap.Date, ap.Time, other, ap.ID)
		}
		byID[ap.ID] = ap
		bySlot[ap.slot()] = ap.ID
	}

	s.mu.Lock()
	s.byID = byID
	s.bySlot = bySlot
	s.mu.Unlock()
	return nil
}

// Snapshot returns a sorted copy of every appointment.
func (s *Store) Snapshot() []Appointment {
	s.mu.RLock()
	out := make([]Appointment, 0, len(s.byID))
	for _, ap := range s.byID {
		out = append(out, ap)
	}
	s.mu.RUnlock()
	return SortByDateTime(out)
}

func (s *Store) Get(id string) (Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ap, ok := s.byID[id]
	return ap, ok
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Commit inserts ap if its slot is free. newID is called until it yields an
// id unused in the store; persist, when set, runs before the insert and
// aborts it on error.
func (s *Store) Commit(
	ap Appointment,
	newID func() string,
	persist func(Appointment) error,
) (Appointment, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.bySlot[ap.slot()]; taken {
		return Appointment{}, httperr.ErrConflict(CodeSlotConflict)
	}

	ap.ID = newID()
	for {
		if _, exists := s.byID[ap.ID]; !exists && ap.ID != "" {
			break
		}
		ap.ID = newID()
	}

	if persist != nil {
		if err := persist(ap); err != nil {
			return Appointment{}, err
		}
	}

	s.byID[ap.ID] = ap
	s.bySlot[ap.slot()] = ap.ID
	return ap, nil
}

// Remove deletes the appointment with id, running persist first.
func (s *Store) Remove(id string, persist func(string) error) (Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ap, ok := s.byID[id]
	if !ok {
		return Appointment{}, httperr.ErrNotFound(CodeNotFound)
	}

	if persist != nil {
		if err := persist(id); err != nil {
			return Appointment{}, err
		}
	}

	delete(s.byID, id)
	delete(s.bySlot, ap.slot())
	return ap, nil
}
