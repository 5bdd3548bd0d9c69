package history

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresRepository archives matches in postgres, for deployments where the
// archive must be shared or must outlive the host. The *sql.DB is expected to
// use the pgx stdlib driver.
type PostgresRepository struct {
	db *sql.DB
}

var _ Repository = (*PostgresRepository)(nil)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS matches (
	id BIGSERIAL PRIMARY KEY,
	room TEXT NOT NULL,
	round INTEGER NOT NULL,
	player1_move TEXT NOT NULL,
	player2_move TEXT NOT NULL,
	winner TEXT NOT NULL DEFAULT '',
	played_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_matches_room ON matches(room);
`

func NewPostgresRepository(ctx context.Context, db *sql.DB) (*PostgresRepository, error) {
	if _, err := db.ExecContext(ctx, postgresSchema); err != nil {
		return nil, fmt.Errorf("create matches table: %w", err)
	}
	return &PostgresRepository{db: db}, nil
}

const queryPostgresSave = `
INSERT INTO matches (room, round, player1_move, player2_move, winner, played_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *PostgresRepository) Save(ctx context.Context, match Match) (Match, error) {
	row := r.db.QueryRowContext(ctx, queryPostgresSave,
		match.Room, match.Round, string(match.Player1Move), string(match.Player2Move),
		string(match.Winner), match.PlayedAt.UTC())
	if err := row.Scan(&match.ID); err != nil {
		return match, fmt.Errorf("%w: save match for room %s: %v", ErrQueryFailed, match.Room, err)
	}
	return match, nil
}

const (
	queryPostgresList = `
SELECT id, room, round, player1_move, player2_move, winner, played_at FROM matches
ORDER BY id DESC
LIMIT $1
`
	queryPostgresListByRoom = `
SELECT id, room, round, player1_move, player2_move, winner, played_at FROM matches
WHERE room = $1
ORDER BY id DESC
LIMIT $2
`
)

func (r *PostgresRepository) List(ctx context.Context, room string, limit int) ([]Match, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if room == "" {
		rows, err = r.db.QueryContext(ctx, queryPostgresList, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, queryPostgresListByRoom, room, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: list matches: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	return scanMatches(rows)
}
