// Package store defines the port to the persistent entries table.
package store

import (
	"context"

	"salonbook/internal/core"
)

// EntryStore is the minimal contract over the entries table. Implementations
// report missing rows with core.ErrNotFound and reachability problems with
// core.ErrStoreUnavailable; drafts are assumed already validated.
type EntryStore interface {
	// ListAll returns every entry ordered by timestamp descending,
	// newest first.
	ListAll(ctx context.Context) ([]core.Entry, error)

	// Create persists the draft, assigning ID and Timestamp.
	Create(ctx context.Context, draft core.EntryDraft) (core.Entry, error)

	// Update overwrites every caller-supplied column of the entry. Callers
	// supply the full draft; partial payloads reset the omitted fields.
	Update(ctx context.Context, id int64, draft core.EntryDraft) (core.Entry, error)

	// Remove deletes the entry. Deleting a missing id is an error, not a
	// silent success.
	Remove(ctx context.Context, id int64) error
}
