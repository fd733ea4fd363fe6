// Package sqlite provides the SQLite-backed journal.Repository.
//
// WAL mode is enabled on Open so journal writes from request handlers never
// block reads from an operator poking at the file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ravelar/storefront/internal/order-service/journal"

	// Pure-Go SQLite driver; no CGO, so cross-compiled and Alpine builds work.
	_ "modernc.org/sqlite"
)

// The table is append-only: one immutable row per coordination decision.
const schema = `
CREATE TABLE IF NOT EXISTS order_journal (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id    INTEGER NOT NULL DEFAULT 0,
    account_id  INTEGER NOT NULL,
    item_id     INTEGER NOT NULL,
    quantity    INTEGER NOT NULL,
    outcome     TEXT    NOT NULL,
    detail      TEXT    NOT NULL DEFAULT '',
    trace_id    TEXT    NOT NULL DEFAULT '',
    span_id     TEXT    NOT NULL DEFAULT '',
    created_at  TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_order_journal_order_id ON order_journal(order_id);
CREATE INDEX IF NOT EXISTS idx_order_journal_trace_id ON order_journal(trace_id);
`

// Repository is the SQLite implementation of journal.Repository.
type Repository struct {
	db *sql.DB
}

var _ journal.Repository = (*Repository)(nil)

// Open opens (or creates) the journal database at path and applies the schema.
func Open(path string) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("journal: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("journal: apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Save appends one entry. Safe for concurrent use.
func (r *Repository) Save(ctx context.Context, entry *journal.Entry) error {
	const q = `
		INSERT INTO order_journal
			(order_id, account_id, item_id, quantity, outcome, detail, trace_id, span_id, created_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.OrderID,
		entry.AccountID,
		entry.ItemID,
		entry.Quantity,
		string(entry.Outcome),
		entry.Detail,
		entry.TraceID,
		entry.SpanID,
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("journal: save entry: %w", err)
	}
	return nil
}

// Recent returns the newest entries, newest first. Intended for operators and
// tests, not the request path.
func (r *Repository) Recent(ctx context.Context, limit int) ([]journal.Entry, error) {
	const q = `
		SELECT order_id, account_id, item_id, quantity, outcome, detail, trace_id, span_id, created_at
		FROM   order_journal
		ORDER  BY id DESC
		LIMIT  ?`

	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("journal: query recent: %w", err)
	}
	defer rows.Close()

	var entries []journal.Entry
	for rows.Next() {
		var entry journal.Entry
		var outcome, createdAt string
		if err := rows.Scan(
			&entry.OrderID,
			&entry.AccountID,
			&entry.ItemID,
			&entry.Quantity,
			&outcome,
			&entry.Detail,
			&entry.TraceID,
			&entry.SpanID,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("journal: scan entry: %w", err)
		}
		entry.Outcome = journal.Outcome(outcome)
		entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("journal: parse time %q: %w", createdAt, err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
