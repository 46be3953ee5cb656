package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/inventory/docs/swagger"
	"github.com/ghuser/inventory/pkg/app"
	"github.com/ghuser/inventory/pkg/config"
	"github.com/ghuser/inventory/pkg/events"
	"github.com/ghuser/inventory/pkg/httpx"
	"github.com/ghuser/inventory/pkg/logger"
	"github.com/ghuser/inventory/pkg/telemetry"
	inventoryApi "github.com/ghuser/inventory/services/inventory/application/api"
	appsvcs "github.com/ghuser/inventory/services/inventory/application/services"
	"github.com/ghuser/inventory/services/inventory/application/subscribers"
	"github.com/ghuser/inventory/services/inventory/infrastructure/persistence/memory"
	"github.com/ghuser/inventory/services/inventory/infrastructure/seed"
)

// @title					Inventory API
// @version				1.0
// @description			Parts and products inventory with validated mutations and change events.
// @contact.name			API Support
// @license.name			MIT
// @license.url			https://opensource.org/licenses/MIT
// @host					localhost:8080
// @BasePath				/api
// @schemes				http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	// Telemetry: OTel tracing + metrics
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{
		Logger:    log,
		EventBus:  eventBus,
		Inventory: memory.NewStore(),
	}

	activity, err := subscribers.Register(ctx, appConfig)
	if err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer activity.Close() //nolint:errcheck

	svcs := appsvcs.New(appConfig)
	defer svcs.Close()

	if cfg.SeedDemoData {
		if err := seedDemoData(ctx, svcs); err != nil {
			log.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
		log.Info("demo data seeded",
			"parts", appConfig.Inventory.PartCount(),
			"products", appConfig.Inventory.ProductCount(),
		)
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Inventory: appConfig.Inventory,
		EventBus:  eventBus,
	}))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, svcs)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
func registerRoutes(r chi.Router, svcs *appsvcs.Services) {
	inventoryApi.InventoryRoutes(r, svcs)
}

func seedDemoData(ctx context.Context, svcs *appsvcs.Services) error {
	f, err := seed.Demo()
	if err != nil {
		return err
	}
	return seed.Apply(ctx, svcs, f)
}
