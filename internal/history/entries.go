package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/reckon"
)

// ErrNotFound is returned when no entry exists with the requested ID.
var ErrNotFound = errors.New("history: entry not found")

// Entry is one recorded calculation.
type Entry struct {
	// ID is a UUIDv7, so lexical order on IDs is creation order.
	ID string

	// Expression is the source text exactly as the user typed it.
	Expression string

	// Result is the formatted result at the time of computation.
	Result string

	// CreatedAt is the UTC creation time.
	CreatedAt time.Time
}

// newEntryID mints a time-ordered unique entry ID.
func newEntryID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Record computes an expression and, on success, appends it to the
// history. Failed computations are not recorded; the error is returned
// to the caller unchanged.
func (s *Store) Record(ctx context.Context, expression string) (*Entry, error) {
	value, err := reckon.Compute(expression)
	if err != nil {
		return nil, err
	}
	return s.Append(ctx, expression, reckon.Format(value))
}

// Append stores an already-computed calculation.
func (s *Store) Append(ctx context.Context, expression, result string) (*Entry, error) {
	entry := &Entry{
		ID:         newEntryID(),
		Expression: expression,
		Result:     result,
		CreatedAt:  time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO entries (id, expression, result, created_at) VALUES (?, ?, ?, ?)",
		entry.ID, entry.Expression, entry.Result, entry.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("append entry: %w", err)
	}
	return entry, nil
}

// List returns the most recent entries, newest first. A non-positive
// limit returns all entries.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	query := "SELECT id, expression, result, created_at FROM entries ORDER BY id DESC"
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Get returns a single entry by ID.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, expression, result, created_at FROM entries WHERE id = ?", id)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %s: %w", id, err)
	}
	return entry, nil
}

// Replay re-computes a stored expression and returns the freshly
// formatted result. The stored row is not modified; the tables are
// immutable, so a replayed result only differs from the stored one if
// the binary changed between runs.
func (s *Store) Replay(ctx context.Context, id string) (string, error) {
	entry, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	value, err := reckon.Compute(entry.Expression)
	if err != nil {
		return "", fmt.Errorf("replay entry %s: %w", id, err)
	}
	return reckon.Format(value), nil
}

// Clear removes all history entries and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM entries")
	if err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	entry := &Entry{}
	var createdAt string
	if err := row.Scan(&entry.ID, &entry.Expression, &entry.Result, &createdAt); err != nil {
		return nil, fmt.Errorf("scan entry: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("scan entry: parse created_at: %w", err)
	}
	entry.CreatedAt = parsed
	return entry, nil
}
