// Package handlers provides HTTP handlers for individual analytics metrics.
package handlers

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"corrdash/internal/domain"
	"corrdash/internal/marketdata"
	"corrdash/internal/modules/analytics"
	"corrdash/internal/modules/dashboard"
	"corrdash/internal/modules/sentiment"
	"corrdash/internal/universe"
)

const dateParamFormat = "2006-01-02"

// Handler handles analytics metric HTTP requests
type Handler struct {
	provider  marketdata.Provider
	analytics *analytics.Service
	sentiment *sentiment.Service
	universe  *universe.Universe
	log       zerolog.Logger
}

// NewHandler creates a new analytics handler
func NewHandler(
	provider marketdata.Provider,
	analyticsService *analytics.Service,
	sentimentService *sentiment.Service,
	u *universe.Universe,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		provider:  provider,
		analytics: analyticsService,
		sentiment: sentimentService,
		universe:  u,
		log:       log.With().Str("handler", "analytics").Logger(),
	}
}

// HandleGetStats handles GET /api/analytics/securities/{symbol}/stats
func (h *Handler) HandleGetStats(w http.ResponseWriter, r *http.Request, symbol string) {
	series, ok := h.fetchSeries(w, r, symbol)
	if !ok {
		return
	}

	stats, err := h.analytics.Stats(series)
	if err != nil {
		http.Error(w, "No data available for "+symbol, http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"symbol":        stats.Symbol,
			"current_price": stats.CurrentPrice,
			"volatility":    floatOrNil(stats.Volatility),
			"rsi_14":        stats.RSI14,
			"sma_50":        stats.SMA50,
		},
		"metadata": map[string]interface{}{
			"observations": series.Len(),
			"timestamp":    time.Now().Format(time.RFC3339),
		},
	})
}

// HandleGetSentiment handles GET /api/analytics/securities/{symbol}/sentiment
func (h *Handler) HandleGetSentiment(w http.ResponseWriter, r *http.Request, symbol string) {
	if !h.universe.Contains(symbol) {
		http.Error(w, "Unknown ticker: "+symbol, http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"symbol":    symbol,
			"sentiment": h.sentiment.Score(symbol),
		},
	})
}

// HandleGetForecast handles GET /api/analytics/securities/{symbol}/forecast
func (h *Handler) HandleGetForecast(w http.ResponseWriter, r *http.Request, symbol string) {
	horizon := dashboard.DefaultForecastHorizon
	if raw := r.URL.Query().Get("horizon"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "Invalid horizon", http.StatusBadRequest)
			return
		}
		horizon = parsed
	}
	if horizon < dashboard.MinForecastHorizon || horizon > dashboard.MaxForecastHorizon {
		http.Error(w, "Horizon out of range", http.StatusBadRequest)
		return
	}

	series, ok := h.fetchSeries(w, r, symbol)
	if !ok {
		return
	}

	forecast, err := h.analytics.Forecast(series, horizon)
	if err != nil {
		http.Error(w, "No data available for "+symbol, http.StatusNotFound)
		return
	}

	points := make([]map[string]interface{}, len(forecast.Points))
	for i, p := range forecast.Points {
		points[i] = map[string]interface{}{
			"time":      p.Time.UTC().Format(dateParamFormat),
			"predicted": floatOrNil(p.Predicted),
		}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"symbol":  forecast.Symbol,
			"horizon": horizon,
			"points":  points,
		},
	})
}

// HandleGetCorrelation handles GET /api/analytics/correlation
func (h *Handler) HandleGetCorrelation(w http.ResponseWriter, r *http.Request) {
	ticker1 := r.URL.Query().Get("ticker1")
	ticker2 := r.URL.Query().Get("ticker2")

	series1, ok := h.fetchSeries(w, r, ticker1)
	if !ok {
		return
	}
	series2, ok := h.fetchSeries(w, r, ticker2)
	if !ok {
		return
	}

	if series1.Empty() || series2.Empty() {
		http.Error(w, "No data available for the selected date range and stocks", http.StatusNotFound)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"data": map[string]interface{}{
			"ticker1":     ticker1,
			"ticker2":     ticker2,
			"correlation": floatOrNil(h.analytics.Correlation(series1, series2)),
		},
	})
}

// fetchSeries validates the symbol, parses the date range and fetches the
// series. On failure it writes the error response and returns ok=false.
func (h *Handler) fetchSeries(w http.ResponseWriter, r *http.Request, symbol string) (series domain.PriceSeries, ok bool) {
	if !h.universe.Contains(symbol) {
		http.Error(w, "Unknown ticker: "+symbol, http.StatusNotFound)
		return series, false
	}

	end := time.Now().UTC()
	start := end.AddDate(-1, 0, 0)
	q := r.URL.Query()
	if raw := q.Get("start"); raw != "" {
		parsed, err := time.Parse(dateParamFormat, raw)
		if err != nil {
			http.Error(w, "Invalid start date", http.StatusBadRequest)
			return series, false
		}
		start = parsed
	}
	if raw := q.Get("end"); raw != "" {
		parsed, err := time.Parse(dateParamFormat, raw)
		if err != nil {
			http.Error(w, "Invalid end date", http.StatusBadRequest)
			return series, false
		}
		end = parsed
	}

	fetched, err := h.provider.Fetch(r.Context(), symbol, start, end)
	if err != nil {
		h.log.Warn().Err(err).Str("symbol", symbol).Msg("Fetch failed")
		http.Error(w, "Failed to fetch data for "+symbol, http.StatusBadGateway)
		return series, false
	}
	return fetched, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}

// floatOrNil maps NaN to nil so responses stay JSON-encodable.
func floatOrNil(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}
