// Package stats keeps a scoreboard of the games finished by this process.
// The database lives in memory and disappears with the process.
package stats

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var ddl string

type Result struct {
	Preset      string
	Won         bool
	Duration    time.Duration
	CellsOpened int
	FinishedAt  time.Time
}

type Summary struct {
	Played  int
	Won     int
	Best    time.Duration
	HasBest bool
}

type SQLStore struct {
	DB *sql.DB
}

func InitializeTables(db *sql.DB) error {
	_, err := db.Exec(ddl)
	return err
}

// Open creates the in-memory scoreboard. Every connection to ":memory:" is a
// separate database, so the pool is limited to one connection.
func Open(ctx context.Context) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if err = InitializeTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return &SQLStore{DB: db}, nil
}

func (s *SQLStore) Close() error {
	return s.DB.Close()
}

func (s *SQLStore) Record(ctx context.Context, r Result) error {
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO games (preset, won, duration_ms, cells_opened, finished_at) VALUES (?, ?, ?, ?, ?)`,
		r.Preset, won, r.Duration.Milliseconds(), r.CellsOpened, r.FinishedAt.UTC())
	return err
}

func (s *SQLStore) Summary(ctx context.Context, preset string) (Summary, error) {
	var summary Summary
	var best sql.NullInt64
	row := s.DB.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(won), 0), MIN(CASE WHEN won = 1 THEN duration_ms END)
		 FROM games WHERE preset = ?`, preset)
	if err := row.Scan(&summary.Played, &summary.Won, &best); err != nil {
		return Summary{}, err
	}
	if best.Valid {
		summary.Best = time.Duration(best.Int64) * time.Millisecond
		summary.HasBest = true
	}
	return summary, nil
}

// Recent returns the last n results, newest first.
func (s *SQLStore) Recent(ctx context.Context, n int) ([]Result, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT preset, won, duration_ms, cells_opened, finished_at FROM games ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var results []Result
	for rows.Next() {
		var r Result
		var won int
		var ms int64
		if err := rows.Scan(&r.Preset, &won, &ms, &r.CellsOpened, &r.FinishedAt); err != nil {
			return nil, err
		}
		r.Won = won == 1
		r.Duration = time.Duration(ms) * time.Millisecond
		results = append(results, r)
	}
	return results, rows.Err()
}
