package history

import (
	"context"
	"fmt"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// Service is the implementation of the match archive service.
type service struct {
	repo Repository
}

func NewService(repo Repository) *service {
	return &service{repo: repo}
}

var _ Service = (*service)(nil)

func (s *service) RecordMatch(ctx context.Context, match Match) error {
	if _, err := s.repo.Save(ctx, match); err != nil {
		return fmt.Errorf("record match: %w", err)
	}
	return nil
}

func (s *service) Recent(ctx context.Context, room string, limit int) ([]Match, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	matches, err := s.repo.List(ctx, room, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}
	return matches, nil
}
