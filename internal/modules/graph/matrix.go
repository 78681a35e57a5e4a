// Package graph builds correlation graphs over the ticker universe and ranks
// tickers by eigenvector centrality.
package graph

import (
	"fmt"

	"github.com/rs/zerolog"

	"corrdash/internal/domain"
	"corrdash/internal/modules/analytics"
	"corrdash/pkg/formulas"
)

// minCommonPoints is the smallest pairwise overlap that still yields a
// defined correlation.
const minCommonPoints = 2

// Service builds correlation matrices and centrality rankings.
type Service struct {
	log zerolog.Logger
}

// NewService creates a graph service.
func NewService(log zerolog.Logger) *Service {
	return &Service{log: log.With().Str("service", "graph").Logger()}
}

// BuildMatrix computes the pairwise correlation matrix over the given series,
// preserving input order. Each pair is inner-joined on trading day before
// correlating. Series that cannot take part - empty, or with fewer than 2
// common observations against an already-retained series - are excluded and
// reported in the second return value.
func (s *Service) BuildMatrix(seriesList []domain.PriceSeries) (domain.CorrelationMatrix, []string) {
	var retained []domain.PriceSeries
	var excluded []string

candidates:
	for _, candidate := range seriesList {
		if candidate.Empty() {
			excluded = append(excluded, candidate.Symbol)
			continue
		}
		for _, kept := range retained {
			if analytics.Align(kept, candidate).Len() < minCommonPoints {
				s.log.Debug().
					Str("symbol", candidate.Symbol).
					Str("against", kept.Symbol).
					Msg("Excluding series with insufficient overlap")
				excluded = append(excluded, candidate.Symbol)
				continue candidates
			}
		}
		retained = append(retained, candidate)
	}

	matrix := domain.CorrelationMatrix{
		Symbols: make([]string, len(retained)),
		Values:  make([][]float64, len(retained)),
	}
	for i, series := range retained {
		matrix.Symbols[i] = series.Symbol
		matrix.Values[i] = make([]float64, len(retained))
		matrix.Values[i][i] = 1.0
	}
	for i := 0; i < len(retained); i++ {
		for j := i + 1; j < len(retained); j++ {
			pair := analytics.Align(retained[i], retained[j])
			corr := formulas.Correlation(pair.A, pair.B)
			matrix.Values[i][j] = corr
			matrix.Values[j][i] = corr
		}
	}
	return matrix, excluded
}

// Validate checks the structural invariants of a correlation matrix.
// Intended for matrices built elsewhere; BuildMatrix output holds these by
// construction.
func Validate(m domain.CorrelationMatrix) error {
	n := m.Size()
	if len(m.Values) != n {
		return fmt.Errorf("matrix has %d rows for %d symbols", len(m.Values), n)
	}
	for i, row := range m.Values {
		if len(row) != n {
			return fmt.Errorf("row %d has %d columns, want %d", i, len(row), n)
		}
	}
	return nil
}
