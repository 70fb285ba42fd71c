package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/downhill/shared/leaderboard"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store persists leaderboard entries in SQLite.
type Store struct {
	db *sql.DB
}

// Ranking order: finished runs first by time ascending, then crashes by
// distance descending. Ties go to the earlier submission.
const orderBy = `CASE kind WHEN 'time' THEN 0 ELSE 1 END,
	CASE kind WHEN 'time' THEN value ELSE -value END,
	id`

// OpenStore opens or creates the database and applies migrations.
func OpenStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; serialize through a single connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			value REAL NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_kind_value ON scores(kind, value);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// List returns the best limit entries in ranking order.
func (s *Store) List(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	return list(ctx, s.db, limit)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func list(ctx context.Context, q querier, limit int) ([]leaderboard.Entry, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT name, kind, value FROM scores ORDER BY `+orderBy+` LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []leaderboard.Entry{}
	for rows.Next() {
		var e leaderboard.Entry
		var kind string
		if err := rows.Scan(&e.Name, &kind, &e.Value); err != nil {
			return nil, err
		}
		e.Kind = leaderboard.Kind(kind)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Insert stores e and returns the top limit entries and the 1-based rank
// e landed at among all stored entries.
func (s *Store) Insert(ctx context.Context, e leaderboard.Entry, limit int) (entries []leaderboard.Entry, rank int, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO scores (name, kind, value, created_at) VALUES (?, ?, ?, ?)`,
		e.Name, string(e.Kind), e.Value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return nil, 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, 0, err
	}

	var ahead int
	if e.Kind == leaderboard.KindTime {
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM scores
			 WHERE kind = 'time' AND (value < ? OR (value = ? AND id < ?))`,
			e.Value, e.Value, id).Scan(&ahead)
	} else {
		err = tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM scores
			 WHERE kind = 'time' OR (kind = 'distance' AND (value > ? OR (value = ? AND id < ?)))`,
			e.Value, e.Value, id).Scan(&ahead)
	}
	if err != nil {
		return nil, 0, err
	}

	entries, err = list(ctx, tx, limit)
	if err != nil {
		return nil, 0, err
	}
	if err = tx.Commit(); err != nil {
		return nil, 0, err
	}
	return entries, ahead + 1, nil
}
