// Package handlers provides HTTP handlers for the dashboard endpoints.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"corrdash/internal/modules/dashboard"
	"corrdash/internal/universe"
)

const dateParamFormat = "2006-01-02"

// defaultLookbackYears sets the start date when the request omits one,
// mirroring the original dashboard's 2020-to-today default span.
const defaultLookbackYears = 4

// Handler handles dashboard HTTP requests
type Handler struct {
	controller *dashboard.Controller
	sessions   *dashboard.SessionStore
	universe   *universe.Universe
	log        zerolog.Logger
}

// NewHandler creates a new dashboard handler
func NewHandler(
	controller *dashboard.Controller,
	sessions *dashboard.SessionStore,
	u *universe.Universe,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		controller: controller,
		sessions:   sessions,
		universe:   u,
		log:        log.With().Str("handler", "dashboard").Logger(),
	}
}

// HandleGetDashboard handles GET /api/dashboard
func (h *Handler) HandleGetDashboard(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state := h.sessions.Get(r.URL.Query().Get("session"))

	view, err := h.controller.Render(r.Context(), req, state)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": view,
		"metadata": map[string]interface{}{
			"panel_state": state,
			"timestamp":   time.Now().Format(time.RFC3339),
		},
	})
}

// HandleNewSession handles POST /api/dashboard/sessions
func (h *Handler) HandleNewSession(w http.ResponseWriter, r *http.Request) {
	id := h.sessions.NewSession()
	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"data": map[string]string{"session": id},
	})
}

// HandleTogglePanel handles POST /api/dashboard/panels/{panel}/toggle
func (h *Handler) HandleTogglePanel(w http.ResponseWriter, r *http.Request, panel string) {
	session := r.URL.Query().Get("session")
	if session == "" {
		http.Error(w, "session query parameter is required", http.StatusBadRequest)
		return
	}

	state, err := h.sessions.Toggle(session, panel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": state,
	})
}

// HandleGetUniverse handles GET /api/universe
func (h *Handler) HandleGetUniverse(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": h.universe.Tickers(),
	})
}

func (h *Handler) parseRequest(r *http.Request) (dashboard.Request, error) {
	q := r.URL.Query()
	req := dashboard.Request{
		Ticker1: q.Get("ticker1"),
		Ticker2: q.Get("ticker2"),
		End:     time.Now().UTC(),
	}
	req.Start = req.End.AddDate(-defaultLookbackYears, 0, 0)

	if raw := q.Get("start"); raw != "" {
		start, err := time.Parse(dateParamFormat, raw)
		if err != nil {
			return req, err
		}
		req.Start = start
	}
	if raw := q.Get("end"); raw != "" {
		end, err := time.Parse(dateParamFormat, raw)
		if err != nil {
			return req, err
		}
		req.End = end
	}
	if raw := q.Get("horizon"); raw != "" {
		horizon, err := strconv.Atoi(raw)
		if err != nil {
			return req, fmt.Errorf("invalid horizon: %q", raw)
		}
		req.ForecastHorizon = horizon
	}
	return req, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}
