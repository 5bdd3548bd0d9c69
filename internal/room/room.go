// Package room hosts two-player rock-paper-scissors matches in named rooms.
package room

import (
	"errors"
	"sync"
	"time"

	"github.com/lumyn/showdown/internal/game"
)

var (
	ErrRoomFull      = errors.New("room: room is full")
	ErrWrongPasscode = errors.New("room: wrong passcode")
	ErrRoomNotFound  = errors.New("room: room not found")
	ErrNotSeated     = errors.New("room: player does not hold this seat")
	ErrAlreadyMoved  = errors.New("room: player already moved this round")
	ErrNotPlaying    = errors.New("room: round is not accepting moves")
	ErrNotResolved   = errors.New("room: round is not resolved")
)

// Phase is the round lifecycle state as seen by a player.
type Phase string

const (
	// PhaseWaiting means the opponent seat is empty.
	PhaseWaiting Phase = "waiting"
	// PhasePlaying means both seats are taken and at least one move is pending.
	PhasePlaying Phase = "playing"
	// PhaseResolved means both moves are in and the round has an outcome.
	PhaseResolved Phase = "resolved"
)

type seat struct {
	playerID string
	move     game.Move
	moved    bool
	wins     int
}

// Room is the live state of a single match. All access goes through methods
// holding the room mutex: seat assignment and move submission race when two
// players act at once, and resolution must happen exactly once per round.
type Room struct {
	mu sync.Mutex

	name         string
	passcodeHash string
	seats        map[game.Role]*seat
	draws        int
	round        int
	createdAt    time.Time
	lastActive   time.Time
}

func newRoom(name, passcodeHash string, now time.Time) *Room {
	return &Room{
		name:         name,
		passcodeHash: passcodeHash,
		seats: map[game.Role]*seat{
			game.RolePlayer1: {},
			game.RolePlayer2: {},
		},
		round:      1,
		createdAt:  now,
		lastActive: now,
	}
}

// PasscodeVerifier checks a plain passcode against a stored hash.
type PasscodeVerifier interface {
	Verify(plain, hashed string) (bool, error)
}

// Join seats the player on the first free seat. Player1 fills first.
func (r *Room) Join(playerID, passcode string, verifier PasscodeVerifier, now time.Time) (game.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.passcodeHash != "" {
		ok, err := verifier.Verify(passcode, r.passcodeHash)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", ErrWrongPasscode
		}
	}

	var role game.Role
	switch {
	case r.seats[game.RolePlayer1].playerID == "":
		role = game.RolePlayer1
	case r.seats[game.RolePlayer2].playerID == "":
		role = game.RolePlayer2
	default:
		return "", ErrRoomFull
	}

	r.seats[role].playerID = playerID
	r.lastActive = now
	return role, nil
}

// Submit records the player's move. The second move of a round resolves it
// and the returned resolution is non-nil exactly once per round.
func (r *Room) Submit(role game.Role, playerID string, move game.Move, now time.Time) (*Resolution, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSeat(role, playerID); err != nil {
		return nil, err
	}
	r.lastActive = now

	mine, theirs := r.seats[role], r.seats[role.Opponent()]
	if theirs.playerID == "" {
		return nil, ErrNotPlaying
	}
	if mine.moved {
		return nil, ErrAlreadyMoved
	}

	mine.move = move
	mine.moved = true

	if !theirs.moved {
		return nil, nil
	}

	p1 := r.seats[game.RolePlayer1].move
	p2 := r.seats[game.RolePlayer2].move
	winner, decided := game.Winner(p1, p2)
	if decided {
		r.seats[winner].wins++
	} else {
		r.draws++
	}

	return &Resolution{
		Room:        r.name,
		Round:       r.round,
		Player1Move: p1,
		Player2Move: p2,
		Winner:      winner,
		PlayedAt:    now,
	}, nil
}

// Rematch clears both moves and advances the round counter.
func (r *Room) Rematch(role game.Role, playerID string, now time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSeat(role, playerID); err != nil {
		return err
	}
	r.lastActive = now

	if !(r.seats[game.RolePlayer1].moved && r.seats[game.RolePlayer2].moved) {
		return ErrNotResolved
	}

	for _, st := range r.seats {
		st.move = ""
		st.moved = false
	}
	r.round++
	return nil
}

// Leave vacates the player's seat and clears its pending move. It reports
// whether the room is now empty.
func (r *Room) Leave(role game.Role, playerID string, now time.Time) (empty bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSeat(role, playerID); err != nil {
		return false, err
	}

	*r.seats[role] = seat{}
	r.lastActive = now

	return r.seats[role.Opponent()].playerID == "", nil
}

// Snapshot renders the room from one player's perspective. The opponent's
// pending move is never included before the round resolves.
func (r *Room) Snapshot(role game.Role, playerID string, now time.Time) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkSeat(role, playerID); err != nil {
		return State{}, err
	}
	r.lastActive = now

	mine, theirs := r.seats[role], r.seats[role.Opponent()]

	state := State{
		Room:           r.name,
		Role:           role,
		Phase:          r.phase(),
		Round:          r.round,
		OpponentSeated: theirs.playerID != "",
		YouMoved:       mine.moved,
		OpponentMoved:  theirs.moved,
		YourWins:       mine.wins,
		OpponentWins:   theirs.wins,
		Draws:          r.draws,
	}

	if mine.moved {
		state.YourMove = mine.move
	}

	if state.Phase == PhaseResolved {
		outcome1, outcome2 := game.Judge(r.seats[game.RolePlayer1].move, r.seats[game.RolePlayer2].move)
		outcome := outcome1
		if role == game.RolePlayer2 {
			outcome = outcome2
		}
		state.Result = &Result{
			YourMove:     mine.move,
			OpponentMove: theirs.move,
			Outcome:      outcome,
		}
	}

	return state, nil
}

// Summary renders the lobby view of the room.
func (r *Room) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	taken := 0
	for _, st := range r.seats {
		if st.playerID != "" {
			taken++
		}
	}

	return Summary{
		Name:      r.name,
		Seats:     taken,
		Phase:     r.phase(),
		Round:     r.round,
		Private:   r.passcodeHash != "",
		CreatedAt: r.createdAt,
	}
}

// Expired reports whether the room has been idle longer than ttl.
func (r *Room) Expired(ttl time.Duration, now time.Time) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return now.Sub(r.lastActive) > ttl
}

func (r *Room) phase() Phase {
	switch {
	case r.seats[game.RolePlayer1].playerID == "" || r.seats[game.RolePlayer2].playerID == "":
		return PhaseWaiting
	case r.seats[game.RolePlayer1].moved && r.seats[game.RolePlayer2].moved:
		return PhaseResolved
	default:
		return PhasePlaying
	}
}

// checkSeat must be called with the room mutex held. A ticket is only good
// for the seat it was issued for: once a seat is vacated and retaken, stale
// tickets for it stop working.
func (r *Room) checkSeat(role game.Role, playerID string) error {
	st, ok := r.seats[role]
	if !ok || st.playerID == "" || st.playerID != playerID {
		return ErrNotSeated
	}
	return nil
}

// Resolution is the once-per-round record of a finished round.
type Resolution struct {
	Room        string
	Round       int
	Player1Move game.Move
	Player2Move game.Move
	Winner      game.Role // empty on a draw
	PlayedAt    time.Time
}

// State is a player-scoped view of a room, returned to polling clients.
type State struct {
	Room           string    `json:"room"`
	Role           game.Role `json:"role"`
	Phase          Phase     `json:"phase"`
	Round          int       `json:"round"`
	OpponentSeated bool      `json:"opponent_seated"`
	YouMoved       bool      `json:"you_moved"`
	OpponentMoved  bool      `json:"opponent_moved"`
	YourMove       game.Move `json:"your_move,omitempty"`
	YourWins       int       `json:"your_wins"`
	OpponentWins   int       `json:"opponent_wins"`
	Draws          int       `json:"draws"`
	Result         *Result   `json:"result,omitempty"`
}

// Result is revealed only after both moves are in.
type Result struct {
	YourMove     game.Move    `json:"your_move"`
	OpponentMove game.Move    `json:"opponent_move"`
	Outcome      game.Outcome `json:"outcome"`
}

// Summary is the lobby view of a room.
type Summary struct {
	Name      string    `json:"name"`
	Seats     int       `json:"seats"`
	Phase     Phase     `json:"phase"`
	Round     int       `json:"round"`
	Private   bool      `json:"private"`
	CreatedAt time.Time `json:"created_at"`
}
