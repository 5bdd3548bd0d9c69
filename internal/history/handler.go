package history

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lumyn/showdown/internal/pkg/message"
	"github.com/lumyn/showdown/internal/pkg/web"
)

// Service is the match archive contract consumed by the handler and by the
// room service when recording resolved rounds.
type Service interface {
	RecordMatch(ctx context.Context, match Match) error
	Recent(ctx context.Context, room string, limit int) ([]Match, error)
}

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type ListResponse struct {
	Matches []Match `json:"matches"`
}

// ListMatches serves GET /matches?room=&limit=.
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 0 {
			web.Fail(w, http.StatusBadRequest, err, message.InvalidInput,
				map[string]string{"limit": "limit must be a non-negative number"})
			return
		}
		limit = parsed
	}

	matches, err := h.svc.Recent(r.Context(), room, limit)
	if err != nil {
		web.Fail(w, http.StatusInternalServerError, err, message.SomethingWrong, nil)
		return
	}

	if matches == nil {
		matches = []Match{}
	}
	web.OK(w, http.StatusOK, nil, &ListResponse{Matches: matches})
}
