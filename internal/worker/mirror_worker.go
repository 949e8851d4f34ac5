// Package worker journals entry changes from SQLite to the spreadsheet
// mirror.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"salonbook/internal/amqp"
	"salonbook/internal/core"
	"salonbook/internal/sheets"
	"salonbook/internal/store/sqlite"
)

// MirrorWorker consumes entry events and appends each affected row to the
// sheets mirror. A periodic sweep over pending rows backs up the event bus
// in case messages are lost.
type MirrorWorker struct {
	storage   *sqlite.Repository
	mirror    sheets.EntryAppender
	batchSize int
}

func NewMirrorWorker(storage *sqlite.Repository, mirror sheets.EntryAppender, batchSize int) *MirrorWorker {
	return &MirrorWorker{
		storage:   storage,
		mirror:    mirror,
		batchSize: batchSize,
	}
}

// HandleEntryEvent processes a single entry event from AMQP.
func (w *MirrorWorker) HandleEntryEvent(ctx context.Context, msg *amqp.EntryEventMessage) error {
	slog.InfoContext(ctx, "Processing entry event", "op", msg.Op, "id", msg.ID)

	if msg.Op == amqp.OpDeleted {
		// The row is gone; nothing to fetch. The journal keeps its history.
		slog.InfoContext(ctx, "Entry deleted upstream, journal rows retained", "id", msg.ID)
		return nil
	}

	entry, err := w.storage.GetEntry(ctx, msg.ID)
	if errors.Is(err, core.ErrNotFound) {
		// Deleted between event and processing; not an error.
		slog.WarnContext(ctx, "Entry vanished before mirroring", "id", msg.ID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get entry from storage: %w", err)
	}

	return w.mirrorEntry(ctx, msg.Op, entry)
}

// ProcessPending mirrors rows still flagged pending. This is the backup
// mechanism for lost AMQP messages.
func (w *MirrorWorker) ProcessPending(ctx context.Context) error {
	pending, err := w.storage.ListPendingMirror(ctx, w.batchSize)
	if err != nil {
		return fmt.Errorf("list pending entries: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "Processing pending entries", "count", len(pending))

	for _, entry := range pending {
		if err := w.mirrorEntry(ctx, amqp.OpCreated, entry); err != nil {
			slog.ErrorContext(ctx, "Failed to mirror entry", "id", entry.ID, "error", err)
			continue
		}
	}

	return nil
}

// StartupSweep mirrors a larger pending batch at worker startup, recovering
// from missed messages or worker downtime.
func (w *MirrorWorker) StartupSweep(ctx context.Context) error {
	pending, err := w.storage.ListPendingMirror(ctx, w.batchSize*5)
	if err != nil {
		return fmt.Errorf("list pending entries for startup sweep: %w", err)
	}

	if len(pending) == 0 {
		slog.InfoContext(ctx, "No pending entries found on startup")
		return nil
	}

	slog.InfoContext(ctx, "Found pending entries on startup, processing...",
		"count", len(pending))

	synced := 0
	failed := 0
	for _, entry := range pending {
		if err := w.mirrorEntry(ctx, amqp.OpCreated, entry); err != nil {
			slog.ErrorContext(ctx, "Failed to mirror entry during startup",
				"id", entry.ID, "error", err)
			failed++
			continue
		}
		synced++
	}

	slog.InfoContext(ctx, "Startup sweep completed",
		"total", len(pending),
		"synced", synced,
		"errors", failed)

	return nil
}

func (w *MirrorWorker) mirrorEntry(ctx context.Context, op string, entry core.Entry) error {
	ref, err := w.mirror.AppendEntry(ctx, op, entry)
	if err != nil {
		if markErr := w.storage.MarkMirrorError(ctx, entry.ID); markErr != nil {
			slog.ErrorContext(ctx, "Failed to mark mirror error", "id", entry.ID, "error", markErr)
		}
		return fmt.Errorf("append to mirror: %w", err)
	}

	if err := w.storage.MarkMirrored(ctx, entry.ID); err != nil {
		// The append worked; only the bookkeeping failed.
		slog.ErrorContext(ctx, "Failed to mark as mirrored", "id", entry.ID, "error", err)
	}

	slog.InfoContext(ctx, "Entry mirrored",
		"op", op,
		"id", entry.ID,
		"sheet_ref", ref)

	return nil
}
