// Package services orchestrates the entry lifecycle across the store, the
// in-memory mirror and the event bus.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"salonbook/internal/amqp"
	"salonbook/internal/cache"
	"salonbook/internal/core"
	"salonbook/internal/store"
)

// EventPublisher notifies the mirror worker of entry changes. Publishing is
// best-effort; a publish failure never fails the request, the worker's sweep
// picks the row up later.
type EventPublisher interface {
	PublishEntryEvent(ctx context.Context, op string, id int64) error
}

// EntryService keeps the mirror consistent with the store: every mutation
// goes to the store first and touches the mirror only on success, so a
// failed call leaves client-visible state unchanged.
type EntryService struct {
	store  store.EntryStore
	mirror *cache.EntryMirror
	events EventPublisher
}

func NewEntryService(s store.EntryStore, mirror *cache.EntryMirror, events EventPublisher) *EntryService {
	return &EntryService{
		store:  s,
		mirror: mirror,
		events: events,
	}
}

// Refresh re-seeds the mirror with a full fetch. Called at startup and
// whenever a caller wants to drop optimistic state.
func (s *EntryService) Refresh(ctx context.Context) error {
	entries, err := s.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	s.mirror.Replace(entries)
	return nil
}

// List returns the mirrored collection, newest first.
func (s *EntryService) List(_ context.Context) []core.Entry {
	return s.mirror.Snapshot()
}

// Create validates the draft before any network call, persists it, then
// prepends the stored entry to the mirror.
func (s *EntryService) Create(ctx context.Context, draft core.EntryDraft) (core.Entry, error) {
	if err := draft.Validate(); err != nil {
		return core.Entry{}, err
	}

	entry, err := s.store.Create(ctx, draft)
	if err != nil {
		return core.Entry{}, fmt.Errorf("create entry: %w", err)
	}

	s.mirror.Prepend(entry)
	s.publish(ctx, amqp.OpCreated, entry.ID)
	return entry, nil
}

// Update overwrites the full entry. Full-replace semantics: the caller
// supplies every field, omitted fields are reset, not retained.
func (s *EntryService) Update(ctx context.Context, id int64, draft core.EntryDraft) (core.Entry, error) {
	if err := draft.Validate(); err != nil {
		return core.Entry{}, err
	}

	entry, err := s.store.Update(ctx, id, draft)
	if err != nil {
		return core.Entry{}, fmt.Errorf("update entry %d: %w", id, err)
	}

	if !s.mirror.Swap(entry) {
		// Mirror drifted (e.g. seeded before this row existed); a prepend
		// keeps it usable until the next Refresh.
		s.mirror.Prepend(entry)
	}
	s.publish(ctx, amqp.OpUpdated, entry.ID)
	return entry, nil
}

// Remove deletes the entry. Deleting a missing id surfaces ErrNotFound and
// the mirror stays as it was.
func (s *EntryService) Remove(ctx context.Context, id int64) error {
	if err := s.store.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove entry %d: %w", id, err)
	}

	s.mirror.Remove(id)
	s.publish(ctx, amqp.OpDeleted, id)
	return nil
}

// Analytics recomputes the aggregates from the current mirror snapshot.
func (s *EntryService) Analytics(_ context.Context, asOf time.Time) core.Analytics {
	return core.ComputeAnalytics(s.mirror.Snapshot(), asOf)
}

// Daily returns the trailing daily net series from the mirror snapshot.
func (s *EntryService) Daily(_ context.Context, asOf time.Time, windowDays int) []core.DayFlow {
	return core.DailySeries(s.mirror.Snapshot(), asOf, windowDays)
}

func (s *EntryService) publish(ctx context.Context, op string, id int64) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishEntryEvent(ctx, op, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish entry event",
			"op", op, "id", id, "error", err)
	}
}
