package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"corrdash/internal/domain"
)

// YahooClient implements Provider using the Yahoo Finance v8 chart API.
type YahooClient struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewYahooClient creates a new Yahoo Finance client.
func NewYahooClient(baseURL string, log zerolog.Logger) *YahooClient {
	return &YahooClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
		log:     log.With().Str("client", "yahoo").Logger(),
	}
}

// yahooChart is the response structure from the Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// Fetch retrieves daily closing prices for symbol between start and end.
func (c *YahooClient) Fetch(ctx context.Context, symbol string, start, end time.Time) (domain.PriceSeries, error) {
	series := domain.PriceSeries{Symbol: symbol}

	u := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&period1=%d&period2=%d",
		c.baseURL, url.PathEscape(symbol), start.Unix(), end.Unix())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return series, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return series, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return series, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return series, fmt.Errorf("yahoo: status %d", resp.StatusCode)
	}

	var chart yahooChart
	if err := json.Unmarshal(body, &chart); err != nil {
		return series, fmt.Errorf("yahoo decode: %w", err)
	}
	if chart.Chart.Error != nil {
		return series, fmt.Errorf("yahoo api error: %s", chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		// No data for this symbol/range. Not a transport fault - return the
		// empty series so the controller can take the no-data path.
		c.log.Debug().Str("symbol", symbol).Msg("No chart data returned")
		return series, nil
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	points := make([]domain.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue // null bars (holidays etc.)
		}
		points = append(points, domain.PricePoint{
			Time:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })

	series.Points = points
	return series, nil
}
