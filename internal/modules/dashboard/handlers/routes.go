package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all dashboard routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/", h.HandleGetDashboard)
		r.Post("/sessions", h.HandleNewSession)
		r.Post("/panels/{panel}/toggle", func(w http.ResponseWriter, r *http.Request) {
			panel := chi.URLParam(r, "panel")
			h.HandleTogglePanel(w, r, panel)
		})
	})

	r.Get("/universe", h.HandleGetUniverse)
}
