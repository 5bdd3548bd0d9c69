package game_test

import (
	"testing"

	"github.com/lumyn/showdown/internal/game"
)

func TestParseMove(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    game.Move
		wantErr bool
	}{
		{"lowercase rock", "rock", game.MoveRock, false},
		{"uppercase paper", "PAPER", game.MovePaper, false},
		{"mixed case scissors", "Scissors", game.MoveScissors, false},
		{"surrounding whitespace", "  rock\n", game.MoveRock, false},
		{"empty", "", "", true},
		{"unknown", "lizard", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := game.ParseMove(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMove(%q) error = %v, wantErr: %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %q, want: %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestJudge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		p1, p2 game.Move
		want1  game.Outcome
		want2  game.Outcome
	}{
		{"rock beats scissors", game.MoveRock, game.MoveScissors, game.OutcomeWin, game.OutcomeLoss},
		{"paper beats rock", game.MovePaper, game.MoveRock, game.OutcomeWin, game.OutcomeLoss},
		{"scissors beat paper", game.MoveScissors, game.MovePaper, game.OutcomeWin, game.OutcomeLoss},
		{"scissors lose to rock", game.MoveScissors, game.MoveRock, game.OutcomeLoss, game.OutcomeWin},
		{"rock loses to paper", game.MoveRock, game.MovePaper, game.OutcomeLoss, game.OutcomeWin},
		{"paper loses to scissors", game.MovePaper, game.MoveScissors, game.OutcomeLoss, game.OutcomeWin},
		{"rock draws rock", game.MoveRock, game.MoveRock, game.OutcomeDraw, game.OutcomeDraw},
		{"paper draws paper", game.MovePaper, game.MovePaper, game.OutcomeDraw, game.OutcomeDraw},
		{"scissors draw scissors", game.MoveScissors, game.MoveScissors, game.OutcomeDraw, game.OutcomeDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got1, got2 := game.Judge(tt.p1, tt.p2)
			if got1 != tt.want1 || got2 != tt.want2 {
				t.Errorf("Judge(%q, %q) = (%q, %q), want: (%q, %q)", tt.p1, tt.p2, got1, got2, tt.want1, tt.want2)
			}
		})
	}
}

func TestWinner(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		p1, p2  game.Move
		want    game.Role
		decided bool
	}{
		{"player1 wins", game.MoveRock, game.MoveScissors, game.RolePlayer1, true},
		{"player2 wins", game.MoveRock, game.MovePaper, game.RolePlayer2, true},
		{"draw", game.MovePaper, game.MovePaper, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, decided := game.Winner(tt.p1, tt.p2)
			if got != tt.want || decided != tt.decided {
				t.Errorf("Winner(%q, %q) = (%q, %v), want: (%q, %v)", tt.p1, tt.p2, got, decided, tt.want, tt.decided)
			}
		})
	}
}

func TestRoleOpponent(t *testing.T) {
	t.Parallel()

	if got := game.RolePlayer1.Opponent(); got != game.RolePlayer2 {
		t.Errorf("RolePlayer1.Opponent() = %q, want: %q", got, game.RolePlayer2)
	}
	if got := game.RolePlayer2.Opponent(); got != game.RolePlayer1 {
		t.Errorf("RolePlayer2.Opponent() = %q, want: %q", got, game.RolePlayer1)
	}
}
