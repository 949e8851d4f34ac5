package cache

import (
	"testing"

	"salonbook/internal/core"
)

func entry(id int64, label string) core.Entry {
	return core.Entry{ID: id, Type: core.TypeMisc, Description: label, Amount: "10", Date: "2024-01-01"}
}

func TestPrependKeepsNewestFirst(t *testing.T) {
	m := NewEntryMirror()
	m.Prepend(entry(1, "a"))
	m.Prepend(entry(2, "b"))

	snap := m.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("len = %d, want 2", len(snap))
	}
	if snap[0].ID != 2 || snap[1].ID != 1 {
		t.Fatalf("order wrong: %v", []int64{snap[0].ID, snap[1].ID})
	}
}

func TestSwapPreservesPosition(t *testing.T) {
	m := NewEntryMirror()
	m.Replace([]core.Entry{entry(3, "c"), entry(2, "b"), entry(1, "a")})

	updated := entry(2, "b2")
	if !m.Swap(updated) {
		t.Fatal("Swap should find id 2")
	}

	snap := m.Snapshot()
	if snap[1].ID != 2 || snap[1].Description != "b2" {
		t.Fatalf("middle entry not replaced in place: %+v", snap[1])
	}

	// Exactly one entry with that id, no duplicates.
	count := 0
	for _, e := range snap {
		if e.ID == 2 {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("id 2 appears %d times, want 1", count)
	}

	if m.Swap(entry(99, "x")) {
		t.Fatal("Swap of unknown id should return false")
	}
}

func TestRemove(t *testing.T) {
	m := NewEntryMirror()
	m.Replace([]core.Entry{entry(2, "b"), entry(1, "a")})

	if !m.Remove(1) {
		t.Fatal("Remove should find id 1")
	}
	if m.Len() != 1 {
		t.Fatalf("len = %d, want 1", m.Len())
	}
	if m.Remove(1) {
		t.Fatal("second Remove should return false")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := NewEntryMirror()
	m.Replace([]core.Entry{entry(1, "a")})

	snap := m.Snapshot()
	snap[0].Description = "mutated"

	if got := m.Snapshot()[0].Description; got != "a" {
		t.Fatalf("snapshot mutation leaked into mirror: %q", got)
	}
}
