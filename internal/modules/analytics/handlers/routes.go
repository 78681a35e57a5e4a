package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all analytics metric routes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/analytics", func(r chi.Router) {
		r.Get("/correlation", h.HandleGetCorrelation)

		r.Route("/securities/{symbol}", func(r chi.Router) {
			r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
				h.HandleGetStats(w, r, chi.URLParam(r, "symbol"))
			})
			r.Get("/sentiment", func(w http.ResponseWriter, r *http.Request) {
				h.HandleGetSentiment(w, r, chi.URLParam(r, "symbol"))
			})
			r.Get("/forecast", func(w http.ResponseWriter, r *http.Request) {
				h.HandleGetForecast(w, r, chi.URLParam(r, "symbol"))
			})
		})
	})
}
