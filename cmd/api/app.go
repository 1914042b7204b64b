package main

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"hazardwatch/internal/archive"
	"hazardwatch/internal/assistant"
	"hazardwatch/internal/config"
	"hazardwatch/internal/location"
	"hazardwatch/internal/observability"
	"hazardwatch/internal/providers/genai"
	"hazardwatch/internal/providers/openweather"
	"hazardwatch/internal/risk"
	"hazardwatch/internal/store"
	"hazardwatch/internal/weather"
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	cfg              *config.Config
	metrics          *observability.Metrics
	weatherService   weather.Service
	locationService  location.Service
	riskService      risk.Service
	assistantService assistant.Service
	points           *store.PointStore
	archive          archive.Store
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	metrics := observability.NewMetrics()

	// Outbound clients: one OpenWeatherMap client covers weather and
	// reverse geocoding, one AI client covers risk, chat, and explain
	owClient := openweather.NewClientWithURLs(
		cfg.Weather.APIKey,
		cfg.Weather.BaseURL,
		cfg.Weather.GeoBaseURL,
		logger,
	)
	aiClient := genai.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, logger)

	archiveClient, err := archive.NewClient(cfg.Archive, logger)
	if err != nil {
		return nil, err
	}
	if err := archiveClient.EnsureBucket(context.Background()); err != nil {
		return nil, err
	}

	app := &App{
		router:           router,
		logger:           logger,
		cfg:              cfg,
		metrics:          metrics,
		weatherService:   weather.NewWeatherService(owClient, metrics, logger),
		locationService:  location.NewLocationService(owClient, metrics, logger),
		riskService:      risk.NewRiskService(aiClient, metrics, logger),
		assistantService: assistant.NewAssistantService(aiClient, logger),
		points:           store.NewPointStore(),
		archive:          archiveClient,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
