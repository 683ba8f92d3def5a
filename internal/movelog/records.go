package movelog

import (
	"context"
	"fmt"
	"time"
)

// Record is one logged move: a file relocated from Source to Dest during the
// organize run identified by RunID.
type Record struct {
	ID      int64
	RunID   string
	Source  string
	Dest    string
	Size    int64
	MovedAt time.Time
}

// Begin starts a fresh run: all records from the previous run are discarded.
// Only the most recent organize run is undoable.
func (s *Store) Begin(ctx context.Context) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM moves`); err != nil {
		return fmt.Errorf("clear previous run: %w", err)
	}
	return nil
}

// Append persists one move record. Called after every successful move,
// before the next move starts, so a crash leaves the log consistent with
// the filesystem up to the last completed move.
func (s *Store) Append(ctx context.Context, record Record) (int64, error) {
	movedAt := record.MovedAt
	if movedAt.IsZero() {
		movedAt = time.Now().UTC()
	}
	res, err := s.execWithRetry(
		ctx,
		`INSERT INTO moves (run_id, source, dest, size_bytes, moved_at) VALUES (?, ?, ?, ?, ?)`,
		record.RunID,
		record.Source,
		record.Dest,
		record.Size,
		movedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert move: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// Records returns all logged moves in insertion order, which is execution
// order. Undo depends on replaying this sequence in reverse.
func (s *Store) Records(ctx context.Context) ([]Record, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, source, dest, size_bytes, moved_at FROM moves ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query moves: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			record  Record
			movedAt string
		)
		if err := rows.Scan(&record.ID, &record.RunID, &record.Source, &record.Dest, &record.Size, &movedAt); err != nil {
			return nil, fmt.Errorf("scan move: %w", err)
		}
		if ts, parseErr := time.Parse(time.RFC3339Nano, movedAt); parseErr == nil {
			record.MovedAt = ts
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Count returns the number of logged moves.
func (s *Store) Count(ctx context.Context) (int, error) {
	ctx = ensureContext(ctx)
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM moves`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count moves: %w", err)
	}
	return count, nil
}

// Remove deletes a single record by identifier, used as undo restores files
// one by one so skipped entries survive for a later retry.
func (s *Store) Remove(ctx context.Context, id int64) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM moves WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete move: %w", err)
	}
	return nil
}

// Clear removes all records.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.execWithRetry(ctx, `DELETE FROM moves`); err != nil {
		return fmt.Errorf("clear moves: %w", err)
	}
	return nil
}
