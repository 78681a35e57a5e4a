package analytics

import (
	"corrdash/internal/domain"
)

const dateKeyFormat = "2006-01-02"

// AlignedPair holds two price series restricted to their common trading days,
// in ascending date order.
type AlignedPair struct {
	Times []string // YYYY-MM-DD, shared index
	A     []float64
	B     []float64
}

// Len returns the number of common observations.
func (p AlignedPair) Len() int {
	return len(p.Times)
}

// Align inner-joins two series on calendar date. Observations present in only
// one series are dropped. Daily bars from different venues rarely share exact
// timestamps, so the join key is the UTC date, not the instant.
func Align(a, b domain.PriceSeries) AlignedPair {
	byDate := make(map[string]float64, len(b.Points))
	for _, p := range b.Points {
		byDate[p.Time.UTC().Format(dateKeyFormat)] = p.Close
	}

	pair := AlignedPair{}
	for _, p := range a.Points {
		date := p.Time.UTC().Format(dateKeyFormat)
		if close, ok := byDate[date]; ok {
			pair.Times = append(pair.Times, date)
			pair.A = append(pair.A, p.Close)
			pair.B = append(pair.B, close)
		}
	}
	return pair
}
