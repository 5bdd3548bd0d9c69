package history_test

import (
	"context"
	"testing"
	"time"

	"github.com/lumyn/showdown/internal/game"
	"github.com/lumyn/showdown/internal/history"
)

var playedAt = time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC)

func seedMatches(t *testing.T, repo history.Repository, n int, room string) {
	t.Helper()

	for i := 0; i < n; i++ {
		match := history.Match{
			Room:        room,
			Round:       i + 1,
			Player1Move: game.MoveRock,
			Player2Move: game.MoveScissors,
			Winner:      game.RolePlayer1,
			PlayedAt:    playedAt.Add(time.Duration(i) * time.Minute),
		}
		if _, err := repo.Save(context.Background(), match); err != nil {
			t.Fatalf("repo.Save() error = %v", err)
		}
	}
}

func TestMemoryRepository_SaveAssignsIDs(t *testing.T) {
	t.Parallel()

	repo := history.NewMemoryRepository()

	first, err := repo.Save(context.Background(), history.Match{Room: "room1", Round: 1})
	if err != nil {
		t.Fatalf("repo.Save() error = %v", err)
	}
	second, err := repo.Save(context.Background(), history.Match{Room: "room1", Round: 2})
	if err != nil {
		t.Fatalf("repo.Save() error = %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = (%d, %d), want: (1, 2)", first.ID, second.ID)
	}
}

func TestMemoryRepository_List(t *testing.T) {
	t.Parallel()

	repo := history.NewMemoryRepository()
	seedMatches(t, repo, 3, "alpha")
	seedMatches(t, repo, 2, "beta")

	t.Run("newest first", func(t *testing.T) {
		matches, err := repo.List(context.Background(), "", 10)
		if err != nil {
			t.Fatalf("repo.List() error = %v", err)
		}
		if len(matches) != 5 {
			t.Fatalf("len(matches) = %d, want: 5", len(matches))
		}
		if matches[0].Room != "beta" || matches[0].Round != 2 {
			t.Errorf("matches[0] = %+v, want the most recent match", matches[0])
		}
	})

	t.Run("room filter", func(t *testing.T) {
		matches, err := repo.List(context.Background(), "alpha", 10)
		if err != nil {
			t.Fatalf("repo.List() error = %v", err)
		}
		if len(matches) != 3 {
			t.Fatalf("len(matches) = %d, want: 3", len(matches))
		}
		for _, m := range matches {
			if m.Room != "alpha" {
				t.Errorf("match room = %q, want: %q", m.Room, "alpha")
			}
		}
	})

	t.Run("limit", func(t *testing.T) {
		matches, err := repo.List(context.Background(), "", 2)
		if err != nil {
			t.Fatalf("repo.List() error = %v", err)
		}
		if len(matches) != 2 {
			t.Errorf("len(matches) = %d, want: 2", len(matches))
		}
	})
}

func TestMatch_Result(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		winner game.Role
		want   string
	}{
		{"player1 wins", game.RolePlayer1, "player1"},
		{"player2 wins", game.RolePlayer2, "player2"},
		{"draw", "", "draw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			match := history.Match{Winner: tt.winner}
			if got := match.Result(); got != tt.want {
				t.Errorf("match.Result() = %q, want: %q", got, tt.want)
			}
		})
	}
}

func TestService_Recent_ClampsLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero uses default", 0, 20},
		{"negative uses default", -3, 20},
		{"in range passes through", 7, 7},
		{"above max is capped", 500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotLimit int
			repo := &history.StubRepo{
				ListFunc: func(_ context.Context, _ string, limit int) ([]history.Match, error) {
					gotLimit = limit
					return nil, nil
				},
			}

			svc := history.NewService(repo)
			if _, err := svc.Recent(context.Background(), "", tt.limit); err != nil {
				t.Fatalf("svc.Recent() error = %v", err)
			}
			if gotLimit != tt.wantLimit {
				t.Errorf("repo limit = %d, want: %d", gotLimit, tt.wantLimit)
			}
		})
	}
}
