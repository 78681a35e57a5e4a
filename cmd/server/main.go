// Package main is the entry point for the corrdash server, a stock
// correlation dashboard backend. It serves a JSON API that fetches
// historical closing prices for a ticker pair, computes descriptive
// statistics, pairwise and rolling correlation, optional linear-trend
// forecasts, and eigenvector centrality over the correlation graph of a
// fixed ticker universe.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"corrdash/internal/config"
	"corrdash/internal/database"
	"corrdash/internal/marketdata"
	"corrdash/internal/modules/analytics"
	analyticshandlers "corrdash/internal/modules/analytics/handlers"
	"corrdash/internal/modules/charts"
	"corrdash/internal/modules/dashboard"
	dashboardhandlers "corrdash/internal/modules/dashboard/handlers"
	"corrdash/internal/modules/graph"
	"corrdash/internal/modules/sentiment"
	"corrdash/internal/scheduler"
	"corrdash/internal/server"
	"corrdash/internal/universe"
	"corrdash/pkg/logger"
)

// syncLookbackDays covers the default dashboard span so the prefetch job
// warms the same range the centrality panel requests.
const syncLookbackDays = 365

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{Level: "info", Pretty: true})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting corrdash")

	uni, err := universe.Load(cfg.UniverseFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.UniverseFile).Msg("Failed to load ticker universe")
	}
	log.Info().Int("tickers", uni.Size()).Msg("Ticker universe loaded")

	cacheDB, err := database.New(database.Config{
		Path:    cfg.CacheDBPath(),
		Profile: database.ProfileCache,
		Name:    "cache",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open cache database")
	}
	defer cacheDB.Close()

	cache, err := marketdata.NewCache(cacheDB.Conn(), time.Duration(cfg.CacheTTLHours)*time.Hour)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize price cache")
	}

	yahooClient := marketdata.NewYahooClient(cfg.ProviderBaseURL, log)
	provider := marketdata.NewCachedProvider(yahooClient, cache, log)

	analyticsService := analytics.NewService(log)
	sentimentService := sentiment.NewService(log)
	graphService := graph.NewService(log)
	chartsService := charts.NewService(analyticsService, log)

	controller := dashboard.NewController(
		provider,
		uni,
		analyticsService,
		sentimentService,
		graphService,
		chartsService,
		log,
	)
	sessions := dashboard.NewSessionStore()

	srv := server.New(server.Config{
		Log:               log,
		Config:            cfg,
		DashboardHandlers: dashboardhandlers.NewHandler(controller, sessions, uni, log),
		AnalyticsHandlers: analyticshandlers.NewHandler(provider, analyticsService, sentimentService, uni, log),
		SystemHandlers:    server.NewSystemHandlers(log),
	})

	// Optional universe prefetch job. The request path does not depend on
	// it; it only keeps the cache warm for the centrality panel.
	var sched *scheduler.Scheduler
	if cfg.SyncSchedule != "" {
		sched = scheduler.New(log)
		syncJob := marketdata.NewSyncJob(provider, uni, syncLookbackDays, log)
		if err := sched.AddJob(cfg.SyncSchedule, syncJob); err != nil {
			log.Fatal().Err(err).Str("schedule", cfg.SyncSchedule).Msg("Failed to register price sync job")
		}
		sched.Start()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error().Err(err).Msg("HTTP server stopped")
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	if sched != nil {
		sched.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	log.Info().Msg("corrdash stopped")
}
