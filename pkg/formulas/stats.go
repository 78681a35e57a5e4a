// Package formulas provides the numeric primitives used by the analytics
// modules. All functions are pure; degenerate inputs yield NaN rather than
// an error so callers can treat them as sentinel values.
package formulas

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// TradingDaysPerYear is the conventional annualization factor for daily
// return volatility.
const TradingDaysPerYear = 252

// Returns converts prices to simple percentage returns.
// Returns[i] = (Price[i+1] - Price[i]) / Price[i]
func Returns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}

	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if prices[i-1] != 0 {
			returns[i-1] = (prices[i] - prices[i-1]) / prices[i-1]
		}
	}
	return returns
}

// AnnualizedVolatility calculates the standard deviation of a price series'
// daily percentage returns, scaled by sqrt(252) to a one-year horizon.
// NaN for series with fewer than 2 points; 0 for a constant series.
func AnnualizedVolatility(prices []float64) float64 {
	if len(prices) < 2 {
		return math.NaN()
	}

	returns := Returns(prices)
	if len(returns) < 2 {
		// A single return has no dispersion to measure.
		return 0
	}
	return stat.StdDev(returns, nil) * math.Sqrt(TradingDaysPerYear)
}

// Correlation calculates the Pearson correlation coefficient between two
// equal-length samples. NaN for mismatched or too-short inputs, and for
// constant inputs (zero variance).
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// LinearForecast fits an ordinary least squares line of price against the
// integer time-step index 0..n-1, then evaluates it at steps n..n+horizon-1.
// A plain trend extrapolation: no seasonality, no confidence bounds.
// Predictions are NaN when the series has fewer than 2 points.
func LinearForecast(prices []float64, horizon int) []float64 {
	if horizon <= 0 {
		return []float64{}
	}

	predicted := make([]float64, horizon)
	if len(prices) < 2 {
		for i := range predicted {
			predicted[i] = math.NaN()
		}
		return predicted
	}

	xs := make([]float64, len(prices))
	for i := range xs {
		xs[i] = float64(i)
	}

	alpha, beta := stat.LinearRegression(xs, prices, nil, false)
	for i := 0; i < horizon; i++ {
		predicted[i] = alpha + beta*float64(len(prices)+i)
	}
	return predicted
}
