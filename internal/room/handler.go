package room

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/lumyn/showdown/internal/game"
	"github.com/lumyn/showdown/internal/pkg/message"
	"github.com/lumyn/showdown/internal/pkg/web"
	"github.com/lumyn/showdown/internal/player"
	"github.com/lumyn/showdown/internal/platform/jwt"
)

// Service is the room service contract.
type Service interface {
	Join(ctx context.Context, params JoinParams) (Seat, error)
	Snapshot(ctx context.Context, name string, role game.Role, playerID string) (State, error)
	SubmitMove(ctx context.Context, name string, role game.Role, playerID string, move game.Move) (State, error)
	Rematch(ctx context.Context, name string, role game.Role, playerID string) (State, error)
	Leave(ctx context.Context, name string, role game.Role, playerID string) error
	ListRooms(ctx context.Context) []Summary
}

type Handler struct {
	svc       Service
	signer    jwt.Signer
	ticketTTL time.Duration
}

func NewHandler(svc Service, signer jwt.Signer, ticketTTL time.Duration) *Handler {
	return &Handler{
		svc:       svc,
		signer:    signer,
		ticketTTL: ticketTTL,
	}
}

type JoinRequest struct {
	Room     string `json:"room" validate:"required,min=1,max=64"`
	Passcode string `json:"passcode,omitempty" validate:"omitempty,min=4,max=64"`
}

func (r JoinRequest) LogValue() slog.Value {
	return slog.GroupValue(slog.String("room", r.Room), slog.Bool("passcode_set", r.Passcode != ""))
}

type JoinResponse struct {
	Room     string    `json:"room"`
	Role     game.Role `json:"role"`
	PlayerID string    `json:"player_id"`
	Ticket   string    `json:"ticket"`
}

// JoinRoom seats the caller and issues the seat ticket used by every other
// in-room endpoint.
func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[JoinRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	seat, err := h.svc.Join(r.Context(), JoinParams{Room: params.Room, Passcode: params.Passcode})
	if err != nil {
		respondServiceError(w, err)
		return
	}

	ticket, err := h.signer.Sign(jwt.Claims{
		PlayerID: seat.PlayerID,
		Room:     seat.Room,
		Role:     seat.Role,
	}, h.ticketTTL)
	if err != nil {
		web.Fail(w, http.StatusInternalServerError, err, message.SomethingWrong, nil)
		return
	}

	data := &JoinResponse{
		Room:     seat.Room,
		Role:     seat.Role,
		PlayerID: seat.PlayerID,
		Ticket:   ticket,
	}
	web.OK(w, http.StatusCreated, nil, data)
}

// RoomState serves the polling endpoint.
func (h *Handler) RoomState(w http.ResponseWriter, r *http.Request) {
	ticket, err := player.TicketFromContext(r.Context())
	if err != nil {
		web.Fail(w, http.StatusUnauthorized, err, message.InvalidTicket, nil)
		return
	}

	state, err := h.svc.Snapshot(r.Context(), ticket.Room, ticket.Role, ticket.PlayerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	web.OK(w, http.StatusOK, nil, &state)
}

type MoveRequest struct {
	Move string `json:"move" validate:"required,oneof=rock paper scissors"`
}

// SubmitMove records the caller's throw for the current round.
func (h *Handler) SubmitMove(w http.ResponseWriter, r *http.Request) {
	ticket, err := player.TicketFromContext(r.Context())
	if err != nil {
		web.Fail(w, http.StatusUnauthorized, err, message.InvalidTicket, nil)
		return
	}

	params, err := web.ParamsFromContext[MoveRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	move, err := game.ParseMove(params.Move)
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput,
			map[string]string{"move": "move must be one of: rock paper scissors"})
		return
	}

	state, err := h.svc.SubmitMove(r.Context(), ticket.Room, ticket.Role, ticket.PlayerID, move)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	web.OK(w, http.StatusOK, nil, &state)
}

// Rematch starts the next round once the current one is resolved.
func (h *Handler) Rematch(w http.ResponseWriter, r *http.Request) {
	ticket, err := player.TicketFromContext(r.Context())
	if err != nil {
		web.Fail(w, http.StatusUnauthorized, err, message.InvalidTicket, nil)
		return
	}

	state, err := h.svc.Rematch(r.Context(), ticket.Room, ticket.Role, ticket.PlayerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	web.OK(w, http.StatusOK, nil, &state)
}

// LeaveRoom vacates the caller's seat.
func (h *Handler) LeaveRoom(w http.ResponseWriter, r *http.Request) {
	ticket, err := player.TicketFromContext(r.Context())
	if err != nil {
		web.Fail(w, http.StatusUnauthorized, err, message.InvalidTicket, nil)
		return
	}

	if err := h.svc.Leave(r.Context(), ticket.Room, ticket.Role, ticket.PlayerID); err != nil {
		respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ListRoomsResponse struct {
	Rooms []Summary `json:"rooms"`
}

// ListRooms serves the lobby.
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	summaries := h.svc.ListRooms(r.Context())
	web.OK(w, http.StatusOK, nil, &ListRoomsResponse{Rooms: summaries})
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrRoomFull):
		web.Fail(w, http.StatusConflict, err, message.RoomFull, nil)
	case errors.Is(err, ErrWrongPasscode):
		web.Fail(w, http.StatusUnauthorized, err, message.WrongPasscode, nil)
	case errors.Is(err, ErrRoomNotFound):
		web.Fail(w, http.StatusNotFound, err, message.RoomNotFound, nil)
	case errors.Is(err, ErrNotSeated):
		web.Fail(w, http.StatusUnauthorized, err, message.InvalidTicket, nil)
	case errors.Is(err, ErrAlreadyMoved):
		web.Fail(w, http.StatusConflict, err, message.AlreadyMoved, nil)
	case errors.Is(err, ErrNotPlaying):
		web.Fail(w, http.StatusConflict, err, message.NotPlaying, nil)
	case errors.Is(err, ErrNotResolved):
		web.Fail(w, http.StatusConflict, err, message.NotResolved, nil)
	default:
		web.Fail(w, http.StatusInternalServerError, err, message.SomethingWrong, nil)
	}
}
