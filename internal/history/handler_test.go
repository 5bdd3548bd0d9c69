package history_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumyn/showdown/internal/game"
	"github.com/lumyn/showdown/internal/history"
	"github.com/lumyn/showdown/internal/pkg/web"
)

func TestHandler_ListMatches(t *testing.T) {
	t.Parallel()

	svc := &history.StubService{
		RecentFunc: func(_ context.Context, room string, limit int) ([]history.Match, error) {
			if room != "room1" {
				t.Errorf("room = %q, want: %q", room, "room1")
			}
			if limit != 5 {
				t.Errorf("limit = %d, want: 5", limit)
			}
			return []history.Match{
				{ID: 1, Room: room, Round: 1, Player1Move: game.MoveRock, Player2Move: game.MovePaper, Winner: game.RolePlayer2},
			}, nil
		},
	}
	handler := history.NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/matches?room=room1&limit=5", nil)
	rec := httptest.NewRecorder()

	handler.ListMatches(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
	}

	body := web.DecodeJSONResponse(t, res)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("body has no data object: %v", body)
	}
	matches, ok := data["matches"].([]any)
	if !ok {
		t.Fatalf("data has no matches array: %v", data)
	}
	if len(matches) != 1 {
		t.Errorf("len(matches) = %d, want: 1", len(matches))
	}
}

func TestHandler_ListMatches_EmptyArchive(t *testing.T) {
	t.Parallel()

	svc := &history.StubService{
		RecentFunc: func(_ context.Context, _ string, _ int) ([]history.Match, error) {
			return nil, nil
		},
	}
	handler := history.NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/matches", nil)
	rec := httptest.NewRecorder()

	handler.ListMatches(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	body := web.DecodeJSONResponse(t, res)
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("body has no data object: %v", body)
	}
	// An empty archive renders as [], not null.
	if _, ok := data["matches"].([]any); !ok {
		t.Errorf("data.matches = %v, want: empty array", data["matches"])
	}
}

func TestHandler_ListMatches_BadLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{"not a number", "/matches?limit=abc"},
		{"negative", "/matches?limit=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			handler := history.NewHandler(&history.StubService{})

			req := httptest.NewRequest(http.MethodGet, tt.query, nil)
			rec := httptest.NewRecorder()

			handler.ListMatches(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestHandler_ListMatches_ArchiveFailure(t *testing.T) {
	t.Parallel()

	svc := &history.StubService{
		RecentFunc: func(_ context.Context, _ string, _ int) ([]history.Match, error) {
			return nil, errors.New("archive down")
		},
	}
	handler := history.NewHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/matches", nil)
	rec := httptest.NewRecorder()

	handler.ListMatches(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusInternalServerError)
	}
}
