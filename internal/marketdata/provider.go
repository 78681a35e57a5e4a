// Package marketdata provides historical closing price retrieval with an
// explicit cache in front of the external data source.
package marketdata

import (
	"context"
	"time"

	"corrdash/internal/domain"
)

// Provider fetches a closing price series for a ticker over a date range.
// Implementations return an error for transport failures; callers that sit
// at the dashboard boundary convert errors to the empty-series path.
type Provider interface {
	Fetch(ctx context.Context, symbol string, start, end time.Time) (domain.PriceSeries, error)
}
