package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/cofound/internal/matchmaker/http"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/service"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store/drivers/dynamo"
	"github.com/aussiebroadwan/cofound/internal/matchmaker/store/drivers/sqlite"
	"github.com/aussiebroadwan/cofound/pkg/metrics"
	"github.com/aussiebroadwan/cofound/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the matchmaker service together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	registry *prometheus.Registry
	metrics  *metrics.Metrics
	db       store.Store
	keys     *VerificationKeys

	statsService      *service.StatsService
	profileService    *service.ProfileService
	matchService      *service.MatchService
	submissionService *service.SubmissionService
	dashboardService  *service.DashboardService
	keyRefreshService *service.KeyRefreshService // nil when keys are static

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "matchmaker",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		registry: prometheus.NewRegistry(),
	}

	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	app.metrics = metrics.New(app.registry)

	ctx := context.Background()
	if err := app.initStore(ctx); err != nil {
		return nil, err
	}

	keys, err := InitVerificationKeys(ctx, app.cfg, app.logger)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize verification keys: %w", err)
	}
	app.keys = keys

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if app.keyRefreshService != nil {
		app.keyRefreshService.Start()
	}

	app.logger.Info("matchmaker starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"store", app.cfg.StoreDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down matchmaker...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if app.keyRefreshService != nil {
		app.keyRefreshService.Stop()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing store", "error", err)
		return err
	}

	app.logger.Info("matchmaker stopped")
	return nil
}

// Handler exposes the routed handler, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// initStore opens the configured backend and applies its schema
func (app *Application) initStore(ctx context.Context) error {
	quarantine := store.WithQuarantine(store.LogQuarantine(app.metrics))

	var db store.Store
	switch app.cfg.StoreDriver {
	case DriverSQLite:
		s, err := sqlite.NewStore(sqlite.FileDSN(app.cfg.DatabaseFile), quarantine)
		if err != nil {
			return fmt.Errorf("failed to open sqlite database: %w", err)
		}
		db = s
	case DriverDynamoDB:
		s, err := dynamo.NewStore(ctx, dynamo.Config{
			Region:      app.cfg.AWSRegion,
			Endpoint:    app.cfg.DynamoDBEndpoint,
			TablePrefix: app.cfg.DynamoDBTablePrefix,
		}, quarantine)
		if err != nil {
			return fmt.Errorf("failed to create dynamodb client: %w", err)
		}
		db = s
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", app.cfg.StoreDriver)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply store migrations: %w", err)
	}

	app.db = db
	app.logger.Info("store ready", "driver", app.cfg.StoreDriver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.statsService = &service.StatsService{Store: app.db, Metrics: app.metrics}
	app.profileService = &service.ProfileService{Store: app.db}
	app.matchService = &service.MatchService{
		Store:          app.db,
		Metrics:        app.metrics,
		FallbackWindow: app.cfg.MatchFallbackWindow,
	}
	app.submissionService = &service.SubmissionService{Store: app.db, Metrics: app.metrics}
	app.dashboardService = &service.DashboardService{
		Stats:       app.statsService,
		Profiles:    app.profileService,
		Matches:     app.matchService,
		Submissions: app.submissionService,
	}

	if app.keys.Source != nil {
		app.keyRefreshService = service.NewKeyRefreshService(
			app.keys.Source,
			app.keys.KeySet,
			app.logger,
			app.cfg.JWKSRefreshInterval,
		)
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys.KeySet,
		app.keys.Verifier,
		BuildVersion,
		app.db,
		app.registry,
		app.cfg.CORSAllowedOrigins,
		app.logger,
	)

	router.StatsService = app.statsService
	router.ProfileService = app.profileService
	router.MatchService = app.matchService
	router.SubmissionService = app.submissionService
	router.DashboardService = app.dashboardService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
