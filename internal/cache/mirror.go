// Package cache holds the in-memory mirror of the entries table. The mirror
// is updated after each successful store mutation so the dashboard never
// needs a full re-fetch per action.
package cache

import (
	"sync"

	"salonbook/internal/core"
)

// EntryMirror is the most recently known full entry collection, newest
// first. Mutating methods are only called after the corresponding store
// operation succeeded; a failed store call leaves the mirror untouched.
type EntryMirror struct {
	mu      sync.RWMutex
	entries []core.Entry
}

func NewEntryMirror() *EntryMirror {
	return &EntryMirror{}
}

// Replace resets the mirror to a freshly fetched collection.
func (m *EntryMirror) Replace(entries []core.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]core.Entry(nil), entries...)
}

// Prepend records a newly created entry at the front. The new entry is
// always newest, so descending-timestamp order is preserved. Concurrent
// creates land in completion order; the server remains the timestamp
// authority.
func (m *EntryMirror) Prepend(e core.Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append([]core.Entry{e}, m.entries...)
}

// Swap replaces the entry with the same id in place, preserving its
// position. Returns false when the id is not mirrored.
func (m *EntryMirror) Swap(e core.Entry) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == e.ID {
			m.entries[i] = e
			return true
		}
	}
	return false
}

// Remove drops the entry with the given id. Returns false when the id is
// not mirrored.
func (m *EntryMirror) Remove(id int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		if m.entries[i].ID == id {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns a copy of the mirrored collection. Callers may hold it
// across analytics and export without racing later mutations.
func (m *EntryMirror) Snapshot() []core.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]core.Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Len returns the number of mirrored entries.
func (m *EntryMirror) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
