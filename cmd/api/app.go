package main

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/config"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/nonce"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/store"
	"github.com/ValeriiVasyliev/webnorthcodechallenge/internal/weather"
)

// nonceHeader carries the anti-forgery token; nonceAction scopes it to
// the weather REST surface.
const (
	nonceHeader = "X-WNCC-Nonce"
	nonceAction = "wncc_rest"
)

// App encapsulates application dependencies
type App struct {
	router         *gin.Engine
	logger         *slog.Logger
	cfg            *config.Config
	stations       store.StationRepository
	weatherService weather.Service
	nonces         *nonce.Service
}

// NewApp creates a new application with real storage and services wired
// from the configuration: a SQLite store when a database path is set,
// the in-memory store otherwise, both seeded with the configured
// station directory.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	stationList := cfg.StationList()

	var (
		stations store.StationRepository
		records  weather.RecordStore
	)
	if cfg.Database.Path != "" {
		db, err := store.OpenSQLite(cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		if err := db.SeedStations(stationList); err != nil {
			return nil, err
		}
		stations, records = db, db
	} else {
		mem := store.NewMemoryStore(stationList)
		stations, records = mem, mem
	}

	weatherSvc := weather.NewService(cfg.OpenWeather.APIKey, records, logger)

	return newApp(cfg, logger, stations, weatherSvc, nonce.NewService(cfg.Security.NonceSecret)), nil
}

// newApp wires an App from already-built dependencies. This is useful
// for testing with mock services.
func newApp(
	cfg *config.Config,
	logger *slog.Logger,
	stations store.StationRepository,
	weatherSvc weather.Service,
	nonces *nonce.Service,
) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	app := &App{
		router:         router,
		logger:         logger,
		cfg:            cfg,
		stations:       stations,
		weatherService: weatherSvc,
		nonces:         nonces,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
