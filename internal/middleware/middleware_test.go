package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lumyn/showdown/internal/middleware"
	"github.com/lumyn/showdown/internal/pkg/web"
	"github.com/lumyn/showdown/internal/platform/validation"
)

type joinPayload struct {
	Room     string `json:"room"`
	Passcode string `json:"passcode,omitempty"`
}

const testBodySize int64 = 1 << 20

func TestDecodePayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantRoom   string
	}{
		{"valid payload", `{"room":"room1","passcode":"hunter2"}`, http.StatusOK, "room1"},
		{"unknown field", `{"room":"room1","villain":"mojo"}`, http.StatusUnprocessableEntity, ""},
		{"malformed json", `{"room":`, http.StatusBadRequest, ""},
		{"trailing data", `{"room":"room1"}{"room":"room2"}`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				params, err := web.ParamsFromContext[joinPayload](r.Context())
				if err != nil {
					t.Errorf("web.ParamsFromContext() error = %v", err)
					return
				}
				if params.Room != tt.wantRoom {
					t.Errorf("params.Room = %q, want: %q", params.Room, tt.wantRoom)
				}
				w.WriteHeader(http.StatusOK)
			})

			handler := middleware.DecodePayload[joinPayload](testBodySize)(next)

			req := httptest.NewRequest(http.MethodPost, "/rooms/join", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestDecodePayload_BodyTooLarge(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.DecodePayload[joinPayload](8)(next)

	req := httptest.NewRequest(http.MethodPost, "/rooms/join", strings.NewReader(`{"room":"a-room-name-well-past-the-cap"}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestValidateInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		errs       map[string]string
		wantStatus int
	}{
		{"valid input", nil, http.StatusOK},
		{"invalid input", map[string]string{"room": "room is required"}, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			validator := &validation.StubValidator{
				ValidateStructFunc: func(_ any) map[string]string {
					return tt.errs
				},
			}

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := middleware.ValidateInput[joinPayload](validator)(next)

			req := httptest.NewRequest(http.MethodPost, "/rooms/join", nil)
			req = req.WithContext(web.NewContextWithParams(req.Context(), joinPayload{Room: "room1"}))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestValidateInput_NoParams(t *testing.T) {
	t.Parallel()

	validator := &validation.StubValidator{
		ValidateStructFunc: func(_ any) map[string]string { return nil },
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.ValidateInput[joinPayload](validator)(next)

	req := httptest.NewRequest(http.MethodPost, "/rooms/join", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCheckContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		contentType string
		wantStatus  int
	}{
		{"json post", http.MethodPost, "application/json", http.StatusOK},
		{"json post with charset", http.MethodPost, "application/json; charset=utf-8", http.StatusOK},
		{"plain text post", http.MethodPost, "text/plain", http.StatusNotAcceptable},
		{"missing content type", http.MethodPost, "", http.StatusNotAcceptable},
		{"get skips the check", http.MethodGet, "", http.StatusOK},
		{"delete skips the check", http.MethodDelete, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := middleware.CheckContentType(next)

			req := httptest.NewRequest(tt.method, "/rooms/join", nil)
			if tt.contentType != "" {
				req.Header.Set(web.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
