package room

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lumyn/showdown/internal/game"
	"github.com/lumyn/showdown/internal/history"
	"github.com/lumyn/showdown/internal/metrics"
	"github.com/lumyn/showdown/internal/pkg/security"
	"github.com/lumyn/showdown/internal/platform/hash"
)

const playerIDLength = 16

// Seat is granted on a successful join.
type Seat struct {
	Room     string
	Role     game.Role
	PlayerID string
}

type JoinParams struct {
	Room     string
	Passcode string
}

// Service is the implementation of the room service interface.
type service struct {
	store   Store
	hasher  hash.Hasher
	archive history.Service
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewService(store Store, hasher hash.Hasher, archive history.Service, m *metrics.Metrics) *service {
	return &service{
		store:   store,
		hasher:  hasher,
		archive: archive,
		metrics: m,
		now:     time.Now,
	}
}

var _ Service = (*service)(nil)

// Join creates the room on first use and seats the player on the first free
// seat. The passcode set by the creator gates every later join.
func (s *service) Join(ctx context.Context, params JoinParams) (Seat, error) {
	playerID, err := security.GenerateRandomID(playerIDLength)
	if err != nil {
		return Seat{}, fmt.Errorf("generate player id: %w", err)
	}

	// Hash before touching the store so the store lock stays cheap.
	passcodeHash := ""
	if params.Passcode != "" {
		passcodeHash, err = s.hasher.Hash(params.Passcode)
		if err != nil {
			return Seat{}, fmt.Errorf("hash passcode: %w", err)
		}
	}

	now := s.now()
	rm, created := s.store.GetOrCreate(params.Room, func() *Room {
		return newRoom(params.Room, passcodeHash, now)
	})
	if created {
		slog.Info("Room created.", "room", params.Room, "private", passcodeHash != "")
		s.metrics.SetRoomsActive(s.store.Len())
	}

	role, err := rm.Join(playerID, params.Passcode, s.hasher, now)
	if err != nil {
		return Seat{}, fmt.Errorf("join room %s: %w", params.Room, err)
	}

	slog.Info("Seat granted.", "room", params.Room, "role", role)
	s.metrics.JoinGranted()

	return Seat{Room: params.Room, Role: role, PlayerID: playerID}, nil
}

// Snapshot returns the player-scoped room state. Clients poll this.
func (s *service) Snapshot(_ context.Context, name string, role game.Role, playerID string) (State, error) {
	rm, ok := s.store.Get(name)
	if !ok {
		return State{}, ErrRoomNotFound
	}
	return rm.Snapshot(role, playerID, s.now())
}

// SubmitMove records a move. The move that completes the pair resolves the
// round and archives the match.
func (s *service) SubmitMove(ctx context.Context, name string, role game.Role, playerID string, move game.Move) (State, error) {
	rm, ok := s.store.Get(name)
	if !ok {
		return State{}, ErrRoomNotFound
	}

	now := s.now()
	resolution, err := rm.Submit(role, playerID, move, now)
	if err != nil {
		return State{}, fmt.Errorf("submit move in room %s: %w", name, err)
	}
	s.metrics.MoveAccepted(string(move))

	if resolution != nil {
		s.recordResolution(ctx, resolution)
	}

	return rm.Snapshot(role, playerID, now)
}

// Rematch starts a fresh round in a resolved room, keeping the tallies.
func (s *service) Rematch(_ context.Context, name string, role game.Role, playerID string) (State, error) {
	rm, ok := s.store.Get(name)
	if !ok {
		return State{}, ErrRoomNotFound
	}

	now := s.now()
	if err := rm.Rematch(role, playerID, now); err != nil {
		return State{}, fmt.Errorf("rematch in room %s: %w", name, err)
	}

	slog.Info("Rematch started.", "room", name)
	return rm.Snapshot(role, playerID, now)
}

// Leave vacates the seat; the room is dropped once both seats are empty.
func (s *service) Leave(_ context.Context, name string, role game.Role, playerID string) error {
	rm, ok := s.store.Get(name)
	if !ok {
		return ErrRoomNotFound
	}

	empty, err := rm.Leave(role, playerID, s.now())
	if err != nil {
		return fmt.Errorf("leave room %s: %w", name, err)
	}

	if empty {
		s.store.Delete(name)
		slog.Info("Room closed.", "room", name)
		s.metrics.SetRoomsActive(s.store.Len())
	}
	return nil
}

// ListRooms renders the lobby.
func (s *service) ListRooms(_ context.Context) []Summary {
	rooms := s.store.List()
	summaries := make([]Summary, 0, len(rooms))
	for _, rm := range rooms {
		summaries = append(summaries, rm.Summary())
	}
	return summaries
}

// recordResolution updates tallies in metrics and the archive. Archiving is
// best-effort: a storage failure must not fail the move that resolved the
// round.
func (s *service) recordResolution(ctx context.Context, res *Resolution) {
	match := history.Match{
		Room:        res.Room,
		Round:       res.Round,
		Player1Move: res.Player1Move,
		Player2Move: res.Player2Move,
		Winner:      res.Winner,
		PlayedAt:    res.PlayedAt,
	}

	s.metrics.MatchResolved(match.Result())
	slog.Info("Round resolved.", "room", res.Room, "round", res.Round, "result", match.Result())

	if err := s.archive.RecordMatch(ctx, match); err != nil {
		slog.Error("Failed to archive match.", "reason", err, "room", res.Room)
	}
}
