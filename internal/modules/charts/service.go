// Package charts builds renderable figure data from price series and
// correlation matrices. Figures are presentation-only JSON payloads; no
// numeric results flow back out of this package.
package charts

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"corrdash/internal/domain"
	"corrdash/internal/modules/analytics"
)

// RollingWindow is the fixed observation count for rolling correlation.
const RollingWindow = 30

// Classification thresholds for rolling correlation highlighting.
const (
	StrongThreshold = 0.7
	WeakThreshold   = 0.3
)

// DataPoint represents a single point on a chart
type DataPoint struct {
	Time  string  `json:"time"` // YYYY-MM-DD format
	Value float64 `json:"value"`
}

// Series is one labelled line on a figure.
type Series struct {
	Label  string      `json:"label"`
	Dashed bool        `json:"dashed,omitempty"`
	Points []DataPoint `json:"points"`
}

// Band marks a highlighted region on the rolling-correlation figure.
type Band struct {
	Time  string `json:"time"`
	Class string `json:"class"` // "strong" or "weak"
}

// Heatmap is the correlation matrix payload for the heatmap figure.
type Heatmap struct {
	Symbols []string    `json:"symbols"`
	Values  [][]float64 `json:"values"`
}

// Figure is an opaque renderable handle consumed by the frontend.
type Figure struct {
	Kind    string   `json:"kind"`
	Title   string   `json:"title"`
	Series  []Series `json:"series,omitempty"`
	Bands   []Band   `json:"bands,omitempty"`
	Heatmap *Heatmap `json:"heatmap,omitempty"`
}

// Service builds chart figures.
type Service struct {
	analytics *analytics.Service
	log       zerolog.Logger
}

// NewService creates a new charts service.
func NewService(analyticsService *analytics.Service, log zerolog.Logger) *Service {
	return &Service{
		analytics: analyticsService,
		log:       log.With().Str("service", "charts").Logger(),
	}
}

// PriceComparison builds the two-line price figure for a ticker pair.
func (s *Service) PriceComparison(a, b domain.PriceSeries) *Figure {
	return &Figure{
		Kind:   "price_comparison",
		Title:  fmt.Sprintf("Stock Prices: %s vs %s", a.Symbol, b.Symbol),
		Series: []Series{seriesLine(a, false), seriesLine(b, false)},
	}
}

// RollingCorrelation builds the 30-observation rolling correlation figure
// with strong/weak highlight bands. Windows with an undefined correlation
// (constant prices) are omitted from the line.
func (s *Service) RollingCorrelation(a, b domain.PriceSeries) *Figure {
	times, values := s.analytics.RollingCorrelation(a, b, RollingWindow)

	fig := &Figure{
		Kind:  "rolling_correlation",
		Title: fmt.Sprintf("%d-Day Rolling Correlation between %s and %s", RollingWindow, a.Symbol, b.Symbol),
	}

	line := Series{Label: "Rolling Correlation"}
	for i, value := range values {
		if math.IsNaN(value) {
			continue
		}
		line.Points = append(line.Points, DataPoint{Time: times[i], Value: value})
		switch {
		case value > StrongThreshold:
			fig.Bands = append(fig.Bands, Band{Time: times[i], Class: "strong"})
		case value < WeakThreshold:
			fig.Bands = append(fig.Bands, Band{Time: times[i], Class: "weak"})
		}
	}
	fig.Series = []Series{line}
	return fig
}

// ForecastOverlay builds the history-plus-forecast figure. Forecast lines
// are dashed; NaN predictions (degenerate inputs) are omitted.
func (s *Service) ForecastOverlay(histories []domain.PriceSeries, forecasts []domain.ForecastResult) *Figure {
	fig := &Figure{
		Kind:  "forecast",
		Title: "Stock Price Forecast",
	}
	for _, h := range histories {
		fig.Series = append(fig.Series, seriesLine(h, false))
	}
	for _, f := range forecasts {
		line := Series{Label: f.Symbol + " Forecast", Dashed: true}
		for _, p := range f.Points {
			if math.IsNaN(p.Predicted) {
				continue
			}
			line.Points = append(line.Points, DataPoint{
				Time:  p.Time.UTC().Format("2006-01-02"),
				Value: p.Predicted,
			})
		}
		fig.Series = append(fig.Series, line)
	}
	return fig
}

// CorrelationHeatmap builds the universe heatmap figure. NaN entries
// (undefined pairwise correlations) are rendered as 0 so the payload stays
// JSON-encodable; the matrix builder normally excludes such series first.
func (s *Service) CorrelationHeatmap(m domain.CorrelationMatrix) *Figure {
	values := make([][]float64, m.Size())
	for i, row := range m.Values {
		values[i] = make([]float64, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				v = 0
			}
			values[i][j] = v
		}
	}
	return &Figure{
		Kind:    "heatmap",
		Title:   "Correlation Matrix",
		Heatmap: &Heatmap{Symbols: m.Symbols, Values: values},
	}
}

func seriesLine(s domain.PriceSeries, dashed bool) Series {
	line := Series{Label: s.Symbol, Dashed: dashed}
	for _, p := range s.Points {
		line.Points = append(line.Points, DataPoint{
			Time:  p.Time.UTC().Format("2006-01-02"),
			Value: p.Close,
		})
	}
	return line
}
