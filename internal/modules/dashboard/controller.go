// Package dashboard orchestrates the analysis pipeline behind a single
// dashboard request: fetch, stats, correlation, figures, and the optional
// forecast and centrality panels.
package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"corrdash/internal/domain"
	"corrdash/internal/marketdata"
	"corrdash/internal/modules/analytics"
	"corrdash/internal/modules/charts"
	"corrdash/internal/modules/graph"
	"corrdash/internal/modules/sentiment"
	"corrdash/internal/universe"
)

// Forecast horizon bounds, mirroring the day-count control on the UI.
const (
	MinForecastHorizon     = 1
	MaxForecastHorizon     = 30
	DefaultForecastHorizon = 7
)

// noDataMessage is shown when either primary series comes back empty.
const noDataMessage = "No data available for the selected date range and stocks."

// Request is one dashboard interaction.
type Request struct {
	Ticker1         string
	Ticker2         string
	Start           time.Time
	End             time.Time
	ForecastHorizon int
}

// TickerInfo is the per-ticker block of the info panel. Pointer fields are
// nil when the underlying number is undefined for the given history.
type TickerInfo struct {
	Symbol       string   `json:"symbol"`
	CurrentPrice float64  `json:"current_price"`
	Volatility   *float64 `json:"volatility"`
	RSI14        *float64 `json:"rsi_14,omitempty"`
	SMA50        *float64 `json:"sma_50,omitempty"`
	Sentiment    float64  `json:"sentiment"`
}

// ForecastRow is one line of the forecasted-prices table.
type ForecastRow struct {
	Date   string              `json:"date"`
	Values map[string]*float64 `json:"values"`
}

// ForecastView is the forecast panel payload.
type ForecastView struct {
	Horizon int           `json:"horizon"`
	Figure  *charts.Figure `json:"figure"`
	Table   []ForecastRow `json:"table"`
}

// CentralityView is the centrality panel payload.
type CentralityView struct {
	Ranking  []domain.CentralityScore `json:"ranking"`
	Heatmap  *charts.Figure           `json:"heatmap"`
	Excluded []string                 `json:"excluded,omitempty"`
}

// View is the full dashboard response for one interaction.
type View struct {
	NoData        bool            `json:"no_data"`
	Message       string          `json:"message,omitempty"`
	Stocks        []TickerInfo    `json:"stocks,omitempty"`
	Correlation   *float64        `json:"correlation,omitempty"`
	PriceFigure   *charts.Figure  `json:"price_figure,omitempty"`
	RollingFigure *charts.Figure  `json:"rolling_figure,omitempty"`
	Forecast      *ForecastView   `json:"forecast,omitempty"`
	Centrality    *CentralityView `json:"centrality,omitempty"`
}

// Controller sequences the dashboard pipeline. It holds no mutable state:
// the view is a pure function of the request, the panel state, and what the
// provider returns.
type Controller struct {
	provider  marketdata.Provider
	universe  *universe.Universe
	analytics *analytics.Service
	sentiment *sentiment.Service
	graph     *graph.Service
	charts    *charts.Service
	log       zerolog.Logger
}

// NewController creates a dashboard controller.
func NewController(
	provider marketdata.Provider,
	u *universe.Universe,
	analyticsService *analytics.Service,
	sentimentService *sentiment.Service,
	graphService *graph.Service,
	chartsService *charts.Service,
	log zerolog.Logger,
) *Controller {
	return &Controller{
		provider:  provider,
		universe:  u,
		analytics: analyticsService,
		sentiment: sentimentService,
		graph:     graphService,
		charts:    chartsService,
		log:       log.With().Str("controller", "dashboard").Logger(),
	}
}

// Render runs the full pipeline for one interaction. Provider failures are
// converted to the no-data path; only invalid requests return an error.
func (c *Controller) Render(ctx context.Context, req Request, state domain.PanelState) (*View, error) {
	if err := c.validate(&req); err != nil {
		return nil, err
	}

	series1 := c.fetch(ctx, req.Ticker1, req.Start, req.End)
	series2 := c.fetch(ctx, req.Ticker2, req.Start, req.End)

	if series1.Empty() || series2.Empty() {
		return &View{NoData: true, Message: noDataMessage}, nil
	}

	view := &View{
		Stocks: []TickerInfo{
			c.tickerInfo(series1),
			c.tickerInfo(series2),
		},
		Correlation:   nanToNil(c.analytics.Correlation(series1, series2)),
		PriceFigure:   c.charts.PriceComparison(series1, series2),
		RollingFigure: c.charts.RollingCorrelation(series1, series2),
	}

	if state.ShowForecast {
		view.Forecast = c.forecastView(series1, series2, req.ForecastHorizon)
	}

	if state.ShowCentrality {
		view.Centrality = c.centralityView(ctx, req.Start, req.End)
	}

	return view, nil
}

func (c *Controller) validate(req *Request) error {
	if !c.universe.Contains(req.Ticker1) {
		return fmt.Errorf("unknown ticker: %s", req.Ticker1)
	}
	if !c.universe.Contains(req.Ticker2) {
		return fmt.Errorf("unknown ticker: %s", req.Ticker2)
	}
	if !req.End.After(req.Start) {
		return fmt.Errorf("end date must be after start date")
	}
	if req.ForecastHorizon == 0 {
		req.ForecastHorizon = DefaultForecastHorizon
	}
	if req.ForecastHorizon < MinForecastHorizon || req.ForecastHorizon > MaxForecastHorizon {
		return fmt.Errorf("forecast horizon must be between %d and %d days", MinForecastHorizon, MaxForecastHorizon)
	}
	return nil
}

// fetch retrieves a series, converting provider errors to the empty-series
// sentinel. The analytical core never sees raw retrieval faults.
func (c *Controller) fetch(ctx context.Context, symbol string, start, end time.Time) domain.PriceSeries {
	series, err := c.provider.Fetch(ctx, symbol, start, end)
	if err != nil {
		c.log.Warn().Err(err).Str("symbol", symbol).Msg("Fetch failed, treating as no data")
		return domain.PriceSeries{Symbol: symbol}
	}
	return series
}

func (c *Controller) tickerInfo(series domain.PriceSeries) TickerInfo {
	info := TickerInfo{
		Symbol:    series.Symbol,
		Sentiment: c.sentiment.Score(series.Symbol),
	}

	stats, err := c.analytics.Stats(series)
	if err != nil {
		// Unreachable on this path: the controller only gets here with
		// non-empty series.
		c.log.Error().Err(err).Str("symbol", series.Symbol).Msg("Stats failed")
		return info
	}

	info.CurrentPrice = stats.CurrentPrice
	info.Volatility = nanToNil(stats.Volatility)
	info.RSI14 = stats.RSI14
	info.SMA50 = stats.SMA50
	return info
}

func (c *Controller) forecastView(series1, series2 domain.PriceSeries, horizon int) *ForecastView {
	forecast1, err1 := c.analytics.Forecast(series1, horizon)
	forecast2, err2 := c.analytics.Forecast(series2, horizon)
	if err1 != nil || err2 != nil {
		// Only possible for empty series, which the no-data path already
		// intercepted.
		c.log.Error().AnErr("err1", err1).AnErr("err2", err2).Msg("Forecast failed")
		return nil
	}

	table := make([]ForecastRow, horizon)
	for i := 0; i < horizon; i++ {
		table[i] = ForecastRow{
			Date: forecast1.Points[i].Time.UTC().Format("2006-01-02"),
			Values: map[string]*float64{
				forecast1.Symbol: nanToNil(forecast1.Points[i].Predicted),
				forecast2.Symbol: nanToNil(forecast2.Points[i].Predicted),
			},
		}
	}

	return &ForecastView{
		Horizon: horizon,
		Figure: c.charts.ForecastOverlay(
			[]domain.PriceSeries{series1, series2},
			[]domain.ForecastResult{forecast1, forecast2},
		),
		Table: table,
	}
}

// centralityView fetches the whole universe sequentially, builds the
// correlation matrix and ranks eigenvector centrality.
func (c *Controller) centralityView(ctx context.Context, start, end time.Time) *CentralityView {
	seriesList := make([]domain.PriceSeries, 0, c.universe.Size())
	for _, symbol := range c.universe.Symbols() {
		seriesList = append(seriesList, c.fetch(ctx, symbol, start, end))
	}

	matrix, excluded := c.graph.BuildMatrix(seriesList)
	ranking, err := c.graph.Rank(matrix)
	if err != nil {
		c.log.Warn().Err(err).Msg("Centrality computation failed")
		return &CentralityView{Excluded: excluded}
	}

	return &CentralityView{
		Ranking:  ranking,
		Heatmap:  c.charts.CorrelationHeatmap(matrix),
		Excluded: excluded,
	}
}

func nanToNil(f float64) *float64 {
	if math.IsNaN(f) {
		return nil
	}
	return &f
}
