package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/MKhiriev/go-dialer/internal/logger"
	"github.com/MKhiriev/go-dialer/models"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
)

// statusResponse is a snapshot plus the indicator class of its status.
type statusResponse struct {
	models.DialerSnapshot
	Class string `json:"class"`
}

func newStatusResponse(snap models.DialerSnapshot) statusResponse {
	return statusResponse{DialerSnapshot: snap, Class: snap.Status.Tag.Class()}
}

type destinationRequest struct {
	To string `json:"to"`
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, newStatusResponse(h.dialer.Snapshot()))
}

// call dials the destination from the optional {"to": ...} body, or the
// current destination when the body is empty.
func (h *Handler) call(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req destinationRequest
	if err := decodeOptional(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	if req.To != "" {
		if err := h.dialer.SetDestination(ctx, req.To); err != nil {
			h.fail(w, r, err)
			return
		}
	}

	h.act(w, r, h.dialer.Call)
}

func (h *Handler) hangup(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.dialer.Hangup)
}

func (h *Handler) toggleMute(w http.ResponseWriter, r *http.Request) {
	h.act(w, r, h.dialer.ToggleMute)
}

func (h *Handler) pressKey(w http.ResponseWriter, r *http.Request) {
	raw, err := url.PathUnescape(chi.URLParam(r, "key"))
	if err != nil || utf8.RuneCountInString(raw) != 1 {
		h.fail(w, r, ErrInvalidKey)
		return
	}

	key, _ := utf8.DecodeRuneInString(raw)
	h.act(w, r, func(ctx context.Context) error {
		return h.dialer.PressKey(ctx, key)
	})
}

func (h *Handler) setDestination(w http.ResponseWriter, r *http.Request) {
	var req destinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	h.act(w, r, func(ctx context.Context) error {
		return h.dialer.SetDestination(ctx, req.To)
	})
}

// act runs action and answers with the resulting snapshot.
func (h *Handler) act(w http.ResponseWriter, r *http.Request, action func(context.Context) error) {
	if err := action(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, newStatusResponse(h.dialer.Snapshot()))
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	logger.FromRequest(r).Err(err).Int("status", status).Msg("dialer action rejected")
	http.Error(w, err.Error(), status)
}

func decodeOptional(r *http.Request, v any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 4096))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if len(body) == 0 {
		return nil
	}
	if err = json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("encoding response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
