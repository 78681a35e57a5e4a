package sentiment

import (
	"fmt"

	"github.com/rs/zerolog"
)

// headlineTemplate is the placeholder headline scored for every ticker.
// There is no live news feed behind this; the result is deterministic and
// identical across tickers, and callers must not treat it as informative.
const headlineTemplate = "The outlook for %s is positive. Analysts expect growth."

// Service produces a sentiment score per ticker.
type Service struct {
	analyzer *Analyzer
	log      zerolog.Logger
}

// NewService creates a sentiment service.
func NewService(log zerolog.Logger) *Service {
	return &Service{
		analyzer: NewAnalyzer(),
		log:      log.With().Str("service", "sentiment").Logger(),
	}
}

// Score returns the polarity of the templated headline for ticker, in [-1, 1].
func (s *Service) Score(ticker string) float64 {
	return s.analyzer.Polarity(fmt.Sprintf(headlineTemplate, ticker))
}
