package charts

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corrdash/internal/domain"
	"corrdash/internal/modules/analytics"
)

func testLog() zerolog.Logger {
	return zerolog.New(nil).Level(zerolog.Disabled)
}

func newTestService() *Service {
	return NewService(analytics.NewService(testLog()), testLog())
}

func testSeries(symbol string, start time.Time, closes ...float64) domain.PriceSeries {
	series := domain.PriceSeries{Symbol: symbol}
	for i, close := range closes {
		series.Points = append(series.Points, domain.PricePoint{
			Time:  start.AddDate(0, 0, i),
			Close: close,
		})
	}
	return series
}

func TestPriceComparison(t *testing.T) {
	svc := newTestService()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := testSeries("AAPL", start, 100, 101, 102)
	b := testSeries("MSFT", start, 200, 199, 202)

	fig := svc.PriceComparison(a, b)
	require.NotNil(t, fig)
	assert.Equal(t, "price_comparison", fig.Kind)
	require.Len(t, fig.Series, 2)
	assert.Equal(t, "AAPL", fig.Series[0].Label)
	assert.Len(t, fig.Series[0].Points, 3)
	assert.Equal(t, "2024-01-01", fig.Series[0].Points[0].Time)
}

func TestRollingCorrelation_BandsClassification(t *testing.T) {
	svc := newTestService()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// Identical random-walk-ish series: every full window correlates at 1.0,
	// so every emitted point is classified strong.
	closes := make([]float64, 45)
	for i := range closes {
		closes[i] = 100 + float64(i%7) + float64(i)
	}
	a := testSeries("A", start, closes...)
	b := testSeries("B", start, closes...)

	fig := svc.RollingCorrelation(a, b)
	require.NotNil(t, fig)
	assert.Equal(t, "rolling_correlation", fig.Kind)
	require.Len(t, fig.Series, 1)
	require.Len(t, fig.Series[0].Points, 45-RollingWindow+1)
	require.Len(t, fig.Bands, 45-RollingWindow+1)
	for _, band := range fig.Bands {
		assert.Equal(t, "strong", band.Class)
	}
}

func TestRollingCorrelation_ShortSeriesProducesEmptyFigure(t *testing.T) {
	svc := newTestService()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := testSeries("A", start, 1, 2, 3)
	b := testSeries("B", start, 4, 5, 6)

	fig := svc.RollingCorrelation(a, b)
	require.NotNil(t, fig)
	assert.Empty(t, fig.Series[0].Points)
	assert.Empty(t, fig.Bands)
}

func TestForecastOverlay(t *testing.T) {
	svc := newTestService()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	history := testSeries("AAPL", start, 100, 102, 104)
	forecast := domain.ForecastResult{
		Symbol: "AAPL",
		Points: []domain.ForecastPoint{
			{Time: start.AddDate(0, 0, 3), Predicted: 106},
			{Time: start.AddDate(0, 0, 4), Predicted: 108},
		},
	}

	fig := svc.ForecastOverlay([]domain.PriceSeries{history}, []domain.ForecastResult{forecast})
	require.NotNil(t, fig)
	require.Len(t, fig.Series, 2)
	assert.False(t, fig.Series[0].Dashed)
	assert.True(t, fig.Series[1].Dashed)
	assert.Equal(t, "AAPL Forecast", fig.Series[1].Label)
	assert.Len(t, fig.Series[1].Points, 2)
}

func TestCorrelationHeatmap(t *testing.T) {
	svc := newTestService()
	matrix := domain.CorrelationMatrix{
		Symbols: []string{"A", "B"},
		Values:  [][]float64{{1, 0.4}, {0.4, 1}},
	}

	fig := svc.CorrelationHeatmap(matrix)
	require.NotNil(t, fig)
	assert.Equal(t, "heatmap", fig.Kind)
	require.NotNil(t, fig.Heatmap)
	assert.Equal(t, []string{"A", "B"}, fig.Heatmap.Symbols)
	assert.Equal(t, 0.4, fig.Heatmap.Values[0][1])
}
