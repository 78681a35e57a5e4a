package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturns(t *testing.T) {
	returns := Returns([]float64{100, 110, 99})
	require.Len(t, returns, 2)
	assert.InDelta(t, 0.10, returns[0], 1e-9)
	assert.InDelta(t, -0.10, returns[1], 1e-9)
}

func TestReturns_TooShort(t *testing.T) {
	assert.Empty(t, Returns([]float64{100}))
	assert.Empty(t, Returns(nil))
}

func TestAnnualizedVolatility_ConstantSeriesIsZero(t *testing.T) {
	prices := make([]float64, 10)
	for i := range prices {
		prices[i] = 100
	}
	assert.Equal(t, 0.0, AnnualizedVolatility(prices))
}

func TestAnnualizedVolatility_NonNegative(t *testing.T) {
	prices := []float64{100, 103, 98, 105, 101, 99, 110}
	vol := AnnualizedVolatility(prices)
	assert.False(t, math.IsNaN(vol))
	assert.GreaterOrEqual(t, vol, 0.0)
}

func TestAnnualizedVolatility_DegenerateInputIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(AnnualizedVolatility([]float64{100})))
	assert.True(t, math.IsNaN(AnnualizedVolatility(nil)))
}

func TestCorrelation_SelfIsOne(t *testing.T) {
	prices := []float64{10, 11, 12, 13, 14}
	assert.InDelta(t, 1.0, Correlation(prices, prices), 1e-9)
}

func TestCorrelation_Symmetry(t *testing.T) {
	x := []float64{10, 12, 11, 15, 13}
	y := []float64{5, 7, 6, 9, 10}
	assert.InDelta(t, Correlation(x, y), Correlation(y, x), 1e-12)
}

func TestCorrelation_PerfectlyAnticorrelated(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{4, 3, 2, 1}
	assert.InDelta(t, -1.0, Correlation(x, y), 1e-9)
}

func TestCorrelation_DegenerateInputIsNaN(t *testing.T) {
	assert.True(t, math.IsNaN(Correlation([]float64{1}, []float64{2})))
	assert.True(t, math.IsNaN(Correlation([]float64{1, 2}, []float64{1})))
	// Constant input has zero variance.
	assert.True(t, math.IsNaN(Correlation([]float64{5, 5, 5}, []float64{1, 2, 3})))
}

func TestLinearForecast_ContinuesLinearSlope(t *testing.T) {
	prices := []float64{10, 12, 14, 16, 18} // slope 2, intercept 10
	predicted := LinearForecast(prices, 7)
	require.Len(t, predicted, 7)
	for i, value := range predicted {
		assert.InDelta(t, 20+2*float64(i), value, 1e-9, "step %d", i)
	}
}

func TestLinearForecast_HorizonLength(t *testing.T) {
	prices := []float64{100, 101, 103, 102}
	assert.Len(t, LinearForecast(prices, 1), 1)
	assert.Len(t, LinearForecast(prices, 30), 30)
	assert.Empty(t, LinearForecast(prices, 0))
}

func TestLinearForecast_DegenerateInputIsNaN(t *testing.T) {
	predicted := LinearForecast([]float64{100}, 3)
	require.Len(t, predicted, 3)
	for _, value := range predicted {
		assert.True(t, math.IsNaN(value))
	}
}

func TestRSI(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i) // monotone rally
	}
	rsi := RSI(closes, 14)
	require.NotNil(t, rsi)
	assert.InDelta(t, 100.0, *rsi, 1e-6)

	assert.Nil(t, RSI(closes[:10], 14))
}

func TestSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}
	sma := SMA(closes, 5)
	require.NotNil(t, sma)
	assert.InDelta(t, 3.0, *sma, 1e-9)

	assert.Nil(t, SMA(closes, 6))
}
