// Package history records observed network state transitions in a
// SQLite journal. networkdctl's monitor command uses it to keep a
// durable trace of what the runtime state looked like over time; the
// runtime state itself is ephemeral and memory-backed, so this is the
// only place a transition survives a reboot.
package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Transition is one observed change of a state field.
type Transition struct {
	ObservedAt time.Time
	// Scope is "global", "link" or "lease".
	Scope string
	// Ifindex is 0 for global scope.
	Ifindex int
	Field   string
	Old     string
	New     string
}

// Journal is a SQLite-backed transition log. Safe for concurrent use;
// database/sql serialises access to the single connection pool.
type Journal struct {
	db *sql.DB
}

// Open opens or creates a journal at path. WAL mode keeps readers from
// blocking the recording writer.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	dsn := "file:" + path +
		"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", path, err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate journal %s: %w", path, err)
	}
	return &Journal{db: db}, nil
}

// Record appends one transition.
func (j *Journal) Record(ctx context.Context, t Transition) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO transitions (observed_at, scope, ifindex, field, old_value, new_value)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		t.ObservedAt.UnixMicro(), t.Scope, t.Ifindex, t.Field, t.Old, t.New)
	if err != nil {
		return fmt.Errorf("record transition: %w", err)
	}
	return nil
}

// Transitions returns the most recent transitions, newest first, up to
// limit. A non-positive limit returns everything.
func (j *Journal) Transitions(ctx context.Context, limit int) ([]Transition, error) {
	query := `SELECT observed_at, scope, ifindex, field, old_value, new_value
		  FROM transitions ORDER BY observed_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query transitions: %w", err)
	}
	defer rows.Close()

	var out []Transition
	for rows.Next() {
		var t Transition
		var usec int64
		if err := rows.Scan(&usec, &t.Scope, &t.Ifindex, &t.Field, &t.Old, &t.New); err != nil {
			return nil, fmt.Errorf("scan transition: %w", err)
		}
		t.ObservedAt = time.UnixMicro(usec)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transitions: %w", err)
	}
	return out, nil
}

// Close closes the journal.
func (j *Journal) Close() error {
	return j.db.Close()
}
