// Package domain contains the core data types shared across modules.
// It has no infrastructure dependencies.
package domain

import "time"

// PricePoint is a single closing price observation.
type PricePoint struct {
	Time  time.Time `json:"time"`
	Close float64   `json:"close"`
}

// PriceSeries is an ordered sequence of closing prices with strictly
// increasing timestamps. An empty series means "no data" - providers return
// it instead of an error when retrieval fails.
type PriceSeries struct {
	Symbol string       `json:"symbol"`
	Points []PricePoint `json:"points"`
}

// Empty reports whether the series carries no observations.
func (s PriceSeries) Empty() bool {
	return len(s.Points) == 0
}

// Len returns the number of observations.
func (s PriceSeries) Len() int {
	return len(s.Points)
}

// Closes returns the closing prices in timestamp order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Last returns the most recent observation. The second return value is false
// for an empty series.
func (s PriceSeries) Last() (PricePoint, bool) {
	if len(s.Points) == 0 {
		return PricePoint{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// ForecastPoint is a single predicted price at a future timestamp.
type ForecastPoint struct {
	Time      time.Time `json:"time"`
	Predicted float64   `json:"predicted"`
}

// ForecastResult holds predicted prices for a contiguous run of future
// timestamps immediately following the source series' last observation.
type ForecastResult struct {
	Symbol string          `json:"symbol"`
	Points []ForecastPoint `json:"points"`
}
