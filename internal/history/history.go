// Package history archives resolved rounds. Unlike live room state, the
// archive survives restarts when backed by sqlite or postgres.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/lumyn/showdown/internal/game"
)

var ErrQueryFailed = errors.New("history repository: query failed")

// Match is one resolved round.
type Match struct {
	ID          int64     `json:"id"`
	Room        string    `json:"room"`
	Round       int       `json:"round"`
	Player1Move game.Move `json:"player1_move"`
	Player2Move game.Move `json:"player2_move"`
	Winner      game.Role `json:"winner,omitempty"` // empty on a draw
	PlayedAt    time.Time `json:"played_at"`
}

// Result renders the match result label used in listings and metrics:
// the winning role, or "draw".
func (m Match) Result() string {
	if m.Winner == "" {
		return "draw"
	}
	return string(m.Winner)
}

// Repository is the interface for the match archive.
type Repository interface {
	Save(ctx context.Context, match Match) (Match, error)
	List(ctx context.Context, room string, limit int) ([]Match, error)
}
