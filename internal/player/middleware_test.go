package player_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumyn/showdown/internal/game"
	"github.com/lumyn/showdown/internal/pkg/web"
	"github.com/lumyn/showdown/internal/platform/jwt"
	"github.com/lumyn/showdown/internal/player"
)

func TestRequireTicket(t *testing.T) {
	t.Parallel()

	claims := &jwt.Claims{PlayerID: "pid1", Room: "room1", Role: game.RolePlayer1}

	signer := &jwt.StubSigner{
		VerifyFunc: func(token string) (*jwt.Claims, error) {
			if token != "good-token" {
				return nil, errors.New("invalid token")
			}
			return claims, nil
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ticket, err := player.TicketFromContext(r.Context())
		if err != nil {
			t.Errorf("player.TicketFromContext() error = %v", err)
			return
		}
		if ticket.Room != "room1" || ticket.Role != game.RolePlayer1 {
			t.Errorf("ticket = %+v, want the verified claims", ticket)
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := player.RequireTicket(signer)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid ticket", "Bearer good-token", http.StatusOK},
		{"bad ticket", "Bearer forged", http.StatusUnauthorized},
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer scheme", "Basic good-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/room/state", nil)
			if tt.authHeader != "" {
				req.Header.Set(web.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestTicketFromContext_Missing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/room/state", nil)
	if _, err := player.TicketFromContext(req.Context()); err == nil {
		t.Error("player.TicketFromContext() error = nil, want: error")
	}
}
