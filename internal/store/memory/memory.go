// Package memory is the in-process entry store used by tests and the
// default development backend.
package memory

import (
	"context"
	"sync"
	"time"

	"salonbook/internal/core"
)

type Store struct {
	mu      sync.Mutex
	nextID  int64
	entries []core.Entry // newest first
	now     func() time.Time
}

func New() *Store {
	return &Store{nextID: 1, now: time.Now}
}

// NewWithClock injects the timestamp source, for deterministic tests.
func NewWithClock(now func() time.Time) *Store {
	return &Store{nextID: 1, now: now}
}

// Seed loads pre-existing entries, newest first, and advances the id
// counter past the highest seeded id.
func (s *Store) Seed(entries []core.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append([]core.Entry(nil), entries...)
	for _, e := range entries {
		if e.ID >= s.nextID {
			s.nextID = e.ID + 1
		}
	}
}

func (s *Store) ListAll(_ context.Context) ([]core.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

func (s *Store) Create(_ context.Context, draft core.EntryDraft) (core.Entry, error) {
	draft = draft.Normalize()
	s.mu.Lock()
	defer s.mu.Unlock()

	e := core.Entry{
		ID:          s.nextID,
		Type:        draft.Type,
		Service:     draft.Service,
		Description: draft.Description,
		Amount:      draft.Amount,
		Quantity:    draft.Quantity,
		Date:        draft.Date,
		Timestamp:   s.now().UTC(),
	}
	s.nextID++
	s.entries = append([]core.Entry{e}, s.entries...)
	return e, nil
}

func (s *Store) Update(_ context.Context, id int64, draft core.EntryDraft) (core.Entry, error) {
	draft = draft.Normalize()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID != id {
			continue
		}
		updated := core.Entry{
			ID:          e.ID,
			Type:        draft.Type,
			Service:     draft.Service,
			Description: draft.Description,
			Amount:      draft.Amount,
			Quantity:    draft.Quantity,
			Date:        draft.Date,
			Timestamp:   e.Timestamp,
		}
		s.entries[i] = updated
		return updated, nil
	}
	return core.Entry{}, core.ErrNotFound
}

func (s *Store) Remove(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return core.ErrNotFound
}
