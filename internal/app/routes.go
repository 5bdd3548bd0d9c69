package app

import (
	"net/http"

	"github.com/lumyn/showdown/internal/history"
	"github.com/lumyn/showdown/internal/metrics"
	"github.com/lumyn/showdown/internal/middleware"
	"github.com/lumyn/showdown/internal/platform/jwt"
	"github.com/lumyn/showdown/internal/platform/router"
	"github.com/lumyn/showdown/internal/platform/validation"
	"github.com/lumyn/showdown/internal/player"
	"github.com/lumyn/showdown/internal/room"
)

func mountRoomRoutes(r router.Router, handler *room.Handler, validator validation.Validator, signer jwt.Signer, maxBodySize int64) {
	r.Post("/rooms/join", handler.JoinRoom,
		middleware.DecodePayload[room.JoinRequest](maxBodySize),
		middleware.ValidateInput[room.JoinRequest](validator))
	r.Get("/rooms", handler.ListRooms)

	r.Group("/room", func(gr router.Router) {
		gr.Get("/state", handler.RoomState)
		gr.Post("/move", handler.SubmitMove,
			middleware.DecodePayload[room.MoveRequest](maxBodySize),
			middleware.ValidateInput[room.MoveRequest](validator))
		gr.Post("/rematch", handler.Rematch)
		gr.Post("/leave", handler.LeaveRoom)
	}, player.RequireTicket(signer))
}

func mountMatchRoutes(r router.Router, handler *history.Handler) {
	r.Get("/matches", handler.ListMatches)
}

func mountOpsRoutes(r router.Router, m *metrics.Metrics) {
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/metrics", m.Handler().ServeHTTP)
}
