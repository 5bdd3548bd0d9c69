package jwt

import (
	"time"

	"github.com/lumyn/showdown/internal/game"
)

// Claims carries the seat ticket a player receives on joining a room. The
// ticket is the only proof of a player's identity, room, and role; in-room
// requests must not trust those values from anywhere else.
type Claims struct {
	PlayerID string
	Room     string
	Role     game.Role
}

// Signer signs and verifies seat tickets.
type Signer interface {
	Sign(claims Claims, duration time.Duration) (token string, err error)
	Verify(tokenString string) (*Claims, error)
}
