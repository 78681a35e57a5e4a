// Package analytics provides descriptive statistics, pairwise correlation
// and linear trend forecasting over price series.
package analytics

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"corrdash/internal/domain"
	"corrdash/pkg/formulas"
)

// Stats are the descriptive numbers shown per ticker on the info panel.
// Nil indicator values mean "not enough history".
type Stats struct {
	Symbol       string   `json:"symbol"`
	CurrentPrice float64  `json:"current_price"`
	Volatility   float64  `json:"volatility"` // Annualized, NaN when degenerate
	RSI14        *float64 `json:"rsi_14,omitempty"`
	SMA50        *float64 `json:"sma_50,omitempty"`
}

// Service computes analytics over price series. All methods are pure;
// degenerate numeric inputs surface as NaN per the cross-module convention.
type Service struct {
	log zerolog.Logger
}

// NewService creates a new analytics service.
func NewService(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("service", "analytics").Logger()}
}

// Correlation returns the Pearson correlation of the two series over their
// common trading days. NaN when fewer than 2 common observations exist.
func (s *Service) Correlation(a, b domain.PriceSeries) float64 {
	pair := Align(a, b)
	if pair.Len() < 2 {
		return math.NaN()
	}
	return formulas.Correlation(pair.A, pair.B)
}

// Stats returns the info-panel numbers for a series. Errors only for an
// empty series (there is no current price to report).
func (s *Service) Stats(series domain.PriceSeries) (*Stats, error) {
	last, ok := series.Last()
	if !ok {
		return nil, fmt.Errorf("no data for %s", series.Symbol)
	}

	closes := series.Closes()
	return &Stats{
		Symbol:       series.Symbol,
		CurrentPrice: last.Close,
		Volatility:   formulas.AnnualizedVolatility(closes),
		RSI14:        formulas.RSI(closes, 14),
		SMA50:        formulas.SMA(closes, 50),
	}, nil
}

// Forecast extrapolates the series' linear trend for horizon future days.
// Predicted timestamps continue day by day from the last observation.
// Predictions are NaN when the series has fewer than 2 points.
func (s *Service) Forecast(series domain.PriceSeries, horizon int) (domain.ForecastResult, error) {
	result := domain.ForecastResult{Symbol: series.Symbol}
	if horizon <= 0 {
		return result, fmt.Errorf("forecast horizon must be positive, got %d", horizon)
	}
	last, ok := series.Last()
	if !ok {
		return result, fmt.Errorf("no data for %s", series.Symbol)
	}

	predicted := formulas.LinearForecast(series.Closes(), horizon)
	result.Points = make([]domain.ForecastPoint, horizon)
	for i, value := range predicted {
		result.Points[i] = domain.ForecastPoint{
			Time:      last.Time.AddDate(0, 0, i+1),
			Predicted: value,
		}
	}
	return result, nil
}

// RollingCorrelation computes the correlation over a trailing window at each
// aligned observation from index window-1 onward. The returned times and
// values are parallel slices.
func (s *Service) RollingCorrelation(a, b domain.PriceSeries, window int) ([]string, []float64) {
	pair := Align(a, b)
	if window < 2 || pair.Len() < window {
		return nil, nil
	}

	times := make([]string, 0, pair.Len()-window+1)
	values := make([]float64, 0, pair.Len()-window+1)
	for i := window - 1; i < pair.Len(); i++ {
		times = append(times, pair.Times[i])
		values = append(values, formulas.Correlation(pair.A[i-window+1:i+1], pair.B[i-window+1:i+1]))
	}
	return times, values
}
