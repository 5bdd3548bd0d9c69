package room

import (
	"context"
	"errors"

	"github.com/lumyn/showdown/internal/game"
)

type StubService struct {
	JoinFunc       func(ctx context.Context, params JoinParams) (Seat, error)
	SnapshotFunc   func(ctx context.Context, name string, role game.Role, playerID string) (State, error)
	SubmitMoveFunc func(ctx context.Context, name string, role game.Role, playerID string, move game.Move) (State, error)
	RematchFunc    func(ctx context.Context, name string, role game.Role, playerID string) (State, error)
	LeaveFunc      func(ctx context.Context, name string, role game.Role, playerID string) error
	ListRoomsFunc  func(ctx context.Context) []Summary
}

var _ Service = (*StubService)(nil)

func (s *StubService) Join(ctx context.Context, params JoinParams) (Seat, error) {
	if s.JoinFunc == nil {
		return Seat{}, errors.New("Join() not implemented by stub")
	}
	return s.JoinFunc(ctx, params)
}

func (s *StubService) Snapshot(ctx context.Context, name string, role game.Role, playerID string) (State, error) {
	if s.SnapshotFunc == nil {
		return State{}, errors.New("Snapshot() not implemented by stub")
	}
	return s.SnapshotFunc(ctx, name, role, playerID)
}

func (s *StubService) SubmitMove(ctx context.Context, name string, role game.Role, playerID string, move game.Move) (State, error) {
	if s.SubmitMoveFunc == nil {
		return State{}, errors.New("SubmitMove() not implemented by stub")
	}
	return s.SubmitMoveFunc(ctx, name, role, playerID, move)
}

func (s *StubService) Rematch(ctx context.Context, name string, role game.Role, playerID string) (State, error) {
	if s.RematchFunc == nil {
		return State{}, errors.New("Rematch() not implemented by stub")
	}
	return s.RematchFunc(ctx, name, role, playerID)
}

func (s *StubService) Leave(ctx context.Context, name string, role game.Role, playerID string) error {
	if s.LeaveFunc == nil {
		return errors.New("Leave() not implemented by stub")
	}
	return s.LeaveFunc(ctx, name, role, playerID)
}

func (s *StubService) ListRooms(ctx context.Context) []Summary {
	if s.ListRoomsFunc == nil {
		return nil
	}
	return s.ListRoomsFunc(ctx)
}
