package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lumyn/showdown/internal/game"
)

// SQLiteRepository archives matches in a single-file database. Zero-setup
// persistence for single-node deployments; use the postgres repository when
// the archive must outlive the host.
type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS matches (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	room TEXT NOT NULL,
	round INTEGER NOT NULL,
	player1_move TEXT NOT NULL,
	player2_move TEXT NOT NULL,
	winner TEXT NOT NULL DEFAULT '',
	played_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_matches_room ON matches(room);
`

// NewSQLiteRepository opens (or creates) the database file, enables WAL mode
// for concurrent reads, and runs the schema. Use ":memory:" for tests.
func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", path, err)
	}

	// sqlite supports a single writer at a time.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("enable WAL mode: %w", err), closeErr)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("create matches table: %w", err), closeErr)
	}

	return &SQLiteRepository{db: db}, nil
}

const querySQLiteSave = `
INSERT INTO matches (room, round, player1_move, player2_move, winner, played_at)
VALUES (?, ?, ?, ?, ?, ?)
RETURNING id
`

func (r *SQLiteRepository) Save(ctx context.Context, match Match) (Match, error) {
	row := r.db.QueryRowContext(ctx, querySQLiteSave,
		match.Room, match.Round, string(match.Player1Move), string(match.Player2Move),
		string(match.Winner), match.PlayedAt.UTC())
	if err := row.Scan(&match.ID); err != nil {
		return match, fmt.Errorf("%w: save match for room %s: %v", ErrQueryFailed, match.Room, err)
	}
	return match, nil
}

const (
	querySQLiteList = `
SELECT id, room, round, player1_move, player2_move, winner, played_at FROM matches
ORDER BY id DESC
LIMIT ?
`
	querySQLiteListByRoom = `
SELECT id, room, round, player1_move, player2_move, winner, played_at FROM matches
WHERE room = ?
ORDER BY id DESC
LIMIT ?
`
)

func (r *SQLiteRepository) List(ctx context.Context, room string, limit int) ([]Match, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if room == "" {
		rows, err = r.db.QueryContext(ctx, querySQLiteList, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, querySQLiteListByRoom, room, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list matches: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	return scanMatches(rows)
}

func (r *SQLiteRepository) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("close sqlite database: %w", err)
	}
	return nil
}

func scanMatches(rows *sql.Rows) ([]Match, error) {
	var matches []Match
	for rows.Next() {
		var (
			m              Match
			p1, p2, winner string
		)
		if err := rows.Scan(&m.ID, &m.Room, &m.Round, &p1, &p2, &winner, &m.PlayedAt); err != nil {
			return nil, fmt.Errorf("history repository: scan row: %w", err)
		}
		m.Player1Move = game.Move(p1)
		m.Player2Move = game.Move(p2)
		m.Winner = game.Role(winner)
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history repository: iterate over match rows: %w", err)
	}

	return matches, nil
}
