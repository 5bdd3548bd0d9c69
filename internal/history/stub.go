package history

import (
	"context"
	"errors"
)

type StubService struct {
	RecordMatchFunc func(ctx context.Context, match Match) error
	RecentFunc      func(ctx context.Context, room string, limit int) ([]Match, error)
}

var _ Service = (*StubService)(nil)

func (s *StubService) RecordMatch(ctx context.Context, match Match) error {
	if s.RecordMatchFunc == nil {
		return errors.New("RecordMatch() not implemented by stub")
	}
	return s.RecordMatchFunc(ctx, match)
}

func (s *StubService) Recent(ctx context.Context, room string, limit int) ([]Match, error) {
	if s.RecentFunc == nil {
		return nil, errors.New("Recent() not implemented by stub")
	}
	return s.RecentFunc(ctx, room, limit)
}

type StubRepo struct {
	SaveFunc func(ctx context.Context, match Match) (Match, error)
	ListFunc func(ctx context.Context, room string, limit int) ([]Match, error)
}

var _ Repository = (*StubRepo)(nil)

func (r *StubRepo) Save(ctx context.Context, match Match) (Match, error) {
	if r.SaveFunc == nil {
		return Match{}, errors.New("Save() not implemented by stub")
	}
	return r.SaveFunc(ctx, match)
}

func (r *StubRepo) List(ctx context.Context, room string, limit int) ([]Match, error) {
	if r.ListFunc == nil {
		return nil, errors.New("List() not implemented by stub")
	}
	return r.ListFunc(ctx, room, limit)
}
