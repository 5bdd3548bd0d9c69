// Package game holds the rock-paper-scissors rules. It has no I/O and no
// knowledge of rooms, transport, or storage.
package game

import (
	"fmt"
	"strings"
)

// Move is one of the three throws a player can make.
type Move string

const (
	MoveRock     Move = "rock"
	MovePaper    Move = "paper"
	MoveScissors Move = "scissors"
)

// ParseMove normalizes and validates a client-supplied move.
func ParseMove(s string) (Move, error) {
	switch Move(strings.ToLower(strings.TrimSpace(s))) {
	case MoveRock:
		return MoveRock, nil
	case MovePaper:
		return MovePaper, nil
	case MoveScissors:
		return MoveScissors, nil
	default:
		return "", fmt.Errorf("unknown move: %q", s)
	}
}

// Beats reports whether m defeats other.
// Rock beats scissors, paper beats rock, scissors beats paper.
func (m Move) Beats(other Move) bool {
	switch m {
	case MoveRock:
		return other == MoveScissors
	case MovePaper:
		return other == MoveRock
	case MoveScissors:
		return other == MovePaper
	default:
		return false
	}
}

// Outcome is the result of a round from a single player's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

// Role identifies a seat within a room. The first player to join a room is
// player1, the second player2.
type Role string

const (
	RolePlayer1 Role = "player1"
	RolePlayer2 Role = "player2"
)

func (r Role) Valid() bool {
	return r == RolePlayer1 || r == RolePlayer2
}

func (r Role) Opponent() Role {
	if r == RolePlayer1 {
		return RolePlayer2
	}
	return RolePlayer1
}

// Judge resolves a round and returns the outcome for player1 and player2,
// in that order.
func Judge(p1, p2 Move) (Outcome, Outcome) {
	if p1 == p2 {
		return OutcomeDraw, OutcomeDraw
	}
	if p1.Beats(p2) {
		return OutcomeWin, OutcomeLoss
	}
	return OutcomeLoss, OutcomeWin
}

// Winner returns the winning role for the given pair of moves. The second
// return value is false when the round is a draw.
func Winner(p1, p2 Move) (Role, bool) {
	switch o1, _ := Judge(p1, p2); o1 {
	case OutcomeWin:
		return RolePlayer1, true
	case OutcomeLoss:
		return RolePlayer2, true
	default:
		return "", false
	}
}
