// Package sqlite is the server-authoritative entry store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"salonbook/internal/core"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(dbPath string) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

const entryColumns = "id, type, service, description, amount, quantity, date, timestamp"

func (r *Repository) ListAll(ctx context.Context) ([]core.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM entries ORDER BY timestamp DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("%w: list entries: %v", core.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var entries []core.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan entry: %v", core.ErrStoreUnavailable, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list entries: %v", core.ErrStoreUnavailable, err)
	}
	return entries, nil
}

func (r *Repository) Create(ctx context.Context, draft core.EntryDraft) (core.Entry, error) {
	draft = draft.Normalize()
	ts := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO entries (type, service, description, amount, quantity, date, timestamp, sync_status)
		 VALUES (?, ?, ?, ?, ?, ?, ?, 'pending')`,
		string(draft.Type), nullable(draft.Service), nullable(draft.Description),
		draft.Amount, draft.Quantity, draft.Date, ts.Format(time.RFC3339Nano))
	if err != nil {
		return core.Entry{}, fmt.Errorf("%w: insert entry: %v", core.ErrStoreUnavailable, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Entry{}, fmt.Errorf("%w: last insert id: %v", core.ErrStoreUnavailable, err)
	}

	e := core.Entry{
		ID:          id,
		Type:        draft.Type,
		Service:     draft.Service,
		Description: draft.Description,
		Amount:      draft.Amount,
		Quantity:    draft.Quantity,
		Date:        draft.Date,
		Timestamp:   ts,
	}

	slog.InfoContext(ctx, "Entry saved to SQLite",
		"id", e.ID,
		"type", e.Type,
		"label", e.Label(),
		"amount", e.Amount,
		"date", e.Date)

	return e, nil
}

func (r *Repository) Update(ctx context.Context, id int64, draft core.EntryDraft) (core.Entry, error) {
	draft = draft.Normalize()

	res, err := r.db.ExecContext(ctx,
		`UPDATE entries
		 SET type = ?, service = ?, description = ?, amount = ?, quantity = ?, date = ?, sync_status = 'pending'
		 WHERE id = ?`,
		string(draft.Type), nullable(draft.Service), nullable(draft.Description),
		draft.Amount, draft.Quantity, draft.Date, id)
	if err != nil {
		return core.Entry{}, fmt.Errorf("%w: update entry: %v", core.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return core.Entry{}, fmt.Errorf("%w: rows affected: %v", core.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return core.Entry{}, core.ErrNotFound
	}
	return r.GetEntry(ctx, id)
}

func (r *Repository) Remove(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: delete entry: %v", core.ErrStoreUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", core.ErrStoreUnavailable, err)
	}
	if n == 0 {
		return core.ErrNotFound
	}
	return nil
}

// GetEntry retrieves a single entry by id, for the mirror worker.
func (r *Repository) GetEntry(ctx context.Context, id int64) (core.Entry, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM entries WHERE id = ?", id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Entry{}, core.ErrNotFound
	}
	if err != nil {
		return core.Entry{}, fmt.Errorf("%w: get entry: %v", core.ErrStoreUnavailable, err)
	}
	return e, nil
}

// ListPendingMirror returns entries not yet journaled to the sheets mirror.
// This backs the worker's sweep in case AMQP messages are lost.
func (r *Repository) ListPendingMirror(ctx context.Context, limit int) ([]core.Entry, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+entryColumns+" FROM entries WHERE sync_status = 'pending' ORDER BY id LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list pending: %v", core.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var entries []core.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan pending: %v", core.ErrStoreUnavailable, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// MarkMirrored flags an entry as journaled to the sheets mirror.
func (r *Repository) MarkMirrored(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE entries SET sync_status = 'mirrored' WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("mark mirrored: %w", err)
	}
	return nil
}

// MarkMirrorError flags an entry whose mirror append failed.
func (r *Repository) MarkMirrorError(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE entries SET sync_status = 'error' WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("mark mirror error: %w", err)
	}
	slog.WarnContext(ctx, "Entry marked with mirror error", "id", id)
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (core.Entry, error) {
	var (
		e                    core.Entry
		service, description sql.NullString
		ts                   string
	)
	if err := row.Scan(&e.ID, (*string)(&e.Type), &service, &description,
		&e.Amount, &e.Quantity, &e.Date, &ts); err != nil {
		return core.Entry{}, err
	}
	e.Service = service.String
	e.Description = description.String
	if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		e.Timestamp = parsed
	}
	return e, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
