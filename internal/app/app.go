// Package app provides application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/findmyprof/findmyprof-go/internal/buildinfo"
	"github.com/findmyprof/findmyprof-go/internal/chatbot"
	"github.com/findmyprof/findmyprof-go/internal/config"
	"github.com/findmyprof/findmyprof-go/internal/logger"
	"github.com/findmyprof/findmyprof-go/internal/metrics"
	"github.com/findmyprof/findmyprof-go/internal/r2client"
	"github.com/findmyprof/findmyprof-go/internal/ratelimit"
	"github.com/findmyprof/findmyprof-go/internal/sentry"
	"github.com/findmyprof/findmyprof-go/internal/storage"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const serviceName = "findmyprof-go"

// Application manages the application lifecycle and dependencies.
type Application struct {
	cfg           *config.Config
	logger        *logger.Logger
	db            *storage.DB
	r2            *r2client.Client
	engine        *chatbot.Engine
	metrics       *metrics.Metrics
	registry      *prometheus.Registry
	chatLimiter   *ratelimit.KeyedLimiter
	chatIPLimiter *ratelimit.KeyedLimiter
	reloadLimiter *ratelimit.Limiter
	router        *gin.Engine
	server        *http.Server
	catalogReady  atomic.Bool    // set after the first successful catalog load
	wg            sync.WaitGroup // Track background goroutines for graceful shutdown
}

// Initialize creates and initializes a new application with all dependencies.
// The seed (if any) is imported and the catalog loaded before it returns.
func Initialize(ctx context.Context, cfg *config.Config) (*Application, error) {
	log := logger.NewWithOptions(cfg.LogLevel, os.Stdout, logger.Options{
		BetterStackToken:   cfg.BetterStack.Token,
		BetterStackTimeout: cfg.BetterStack.Timeout,
		Queue:              logger.QueueOptions{Size: cfg.BetterStack.QueueSize},
	})

	log = log.WithField("service", serviceName)
	if host, err := os.Hostname(); err == nil && host != "" {
		log = log.WithField("instance_id", host)
	}

	// Set as default logger so package-level slog.*Context() calls pick up
	// request and session IDs through the ContextHandler.
	slog.SetDefault(log.Logger)

	log.WithField("version", buildinfo.Release()).Info("Initializing application...")
	if cfg.BetterStack.Token != "" {
		log.Info("Better Stack logging enabled")
	}

	if cfg.Sentry.Enabled() {
		release := cfg.Sentry.Release
		if release == "" {
			release = buildinfo.Release()
		}
		if err := sentry.Initialize(sentry.Config{
			DSN:         cfg.Sentry.DSN,
			Token:       cfg.Sentry.Token,
			Host:        cfg.Sentry.Host,
			Environment: cfg.Sentry.Environment,
			Release:     release,
			SampleRate:  cfg.Sentry.SampleRate,
		}); err != nil {
			log.WithError(err).Warn("Sentry initialization failed")
		} else {
			log.WithField("environment", cfg.Sentry.Environment).Info("Sentry error reporting enabled")
		}
	}

	db, err := storage.New(ctx, cfg.SQLitePath())
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	log.WithField("path", cfg.SQLitePath()).Info("Database connected")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewBuildInfoCollector(),
	)
	m := metrics.New(registry)
	metrics.RegisterLogQueue(registry, func() (int, uint64, uint64) {
		s := logger.RemoteQueueStats()
		return s.Pending, s.Shed, s.Dropped
	})

	var r2 *r2client.Client
	if cfg.R2.Enabled {
		r2, err = r2client.New(ctx, r2client.Config{
			Endpoint:    cfg.R2.Endpoint,
			AccessKeyID: cfg.R2.AccessKeyID,
			SecretKey:   cfg.R2.SecretAccessKey,
			BucketName:  cfg.R2.BucketName,
			PresignTTL:  cfg.R2.PresignTTL,
		})
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("r2: %w", err)
		}
		log.WithField("bucket", cfg.R2.BucketName).Info("R2 attachment links enabled")
	}

	var downloader seedDownloader
	if r2 != nil {
		downloader = r2
	}
	if err := importSeed(ctx, cfg.Catalog, db, downloader, log); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}

	engineCfg := chatbot.Config{
		Rows:        db,
		Attachments: db,
		MinScore:    cfg.Catalog.MinScore,
		Logger:      log,
		Metrics:     m,
	}
	if r2 != nil {
		engineCfg.Signer = r2
	}
	engine, err := chatbot.New(engineCfg)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("chatbot: %w", err)
	}

	chatLimiter := ratelimit.NewKeyedLimiter(ratelimit.KeyedConfig{
		Name:          "chat",
		Burst:         cfg.Chat.RateBurst,
		RefillRate:    cfg.Chat.RateRefill,
		DailyLimit:    cfg.Chat.RateDaily,
		CleanupPeriod: config.RateLimiterCleanupInterval,
		Metrics:       m,
	})
	chatIPLimiter := ratelimit.NewKeyedLimiter(ratelimit.KeyedConfig{
		Name:          "chat_ip",
		Burst:         cfg.Chat.IPRateBurst,
		RefillRate:    cfg.Chat.IPRateRefill,
		DailyLimit:    cfg.Chat.IPRateDaily,
		CleanupPeriod: config.RateLimiterCleanupInterval,
		Metrics:       m,
	})

	app := &Application{
		cfg:           cfg,
		logger:        log,
		db:            db,
		r2:            r2,
		engine:        engine,
		metrics:       m,
		registry:      registry,
		chatLimiter:   chatLimiter,
		chatIPLimiter: chatIPLimiter,
		reloadLimiter: ratelimit.New(cfg.Catalog.ReloadBurst, cfg.Catalog.ReloadRefill),
	}

	if _, err := app.reloadCatalog(ctx, "startup"); err != nil {
		log.WithError(err).Warn("Initial catalog load failed, serving empty catalog")
	}

	app.router = app.newRouter()
	app.server = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           app.router,
		ReadHeaderTimeout: config.HTTPRead,
		ReadTimeout:       config.HTTPRead,
		WriteTimeout:      config.HTTPWrite,
		IdleTimeout:       config.HTTPIdle,
	}

	log.WithField("professors_loaded", engine.CatalogSize()).Info("Initialization complete")
	return app, nil
}

// newRouter builds the gin engine with middleware and every route.
func (a *Application) newRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	router.Use(gin.Recovery())
	router.Use(securityHeadersMiddleware())
	router.Use(corsMiddleware(a.cfg.CORSOrigins))
	router.Use(requestContextMiddleware())
	router.Use(loggingMiddleware(a.logger))

	router.GET("/", a.home)
	router.POST("/chat", a.chat)
	router.POST("/reload-data", a.reloadData)
	router.GET("/health", a.health)
	router.GET("/professors/search", a.searchProfessors)
	router.GET("/livez", a.livenessCheck)
	router.HEAD("/livez", a.livenessCheck)
	router.GET("/readyz", a.readinessCheck)
	router.HEAD("/readyz", a.readinessCheck)
	router.GET("/metrics",
		metricsAuthMiddleware(a.cfg.Metrics),
		gin.WrapH(promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{})))

	return router
}

// reloadCatalog rebuilds the engine's catalog and records the outcome.
// trigger is "startup", "api" or "schedule".
func (a *Application) reloadCatalog(ctx context.Context, trigger string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, config.CatalogReload)
	defer cancel()

	start := time.Now()
	n, err := a.engine.ReloadCatalog(ctx)
	status := "success"
	if err != nil {
		status = "error"
	} else {
		a.catalogReady.Store(true)
	}
	a.metrics.RecordCatalogReload(trigger, status, time.Since(start).Seconds())
	return n, err
}

// Run starts the HTTP server and background jobs, then blocks until
// SIGINT or SIGTERM.
//
// Shutdown order: cancel background jobs, wait for them, then stop the
// HTTP server and close resources. Closing the database first would fail
// a reload that is still running.
func (a *Application) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.startBackgroundJobs(ctx)
	a.startHTTPServer()

	sig := a.waitForShutdownSignal()
	a.logger.WithField("signal", sig.String()).Info("Received shutdown signal")

	cancel()

	a.logger.Info("Waiting for background jobs to finish...")
	start := time.Now()
	a.wg.Wait()
	a.logger.WithField("duration_ms", time.Since(start).Milliseconds()).
		Info("All background jobs completed")

	return a.shutdown()
}

// startBackgroundJobs starts all background goroutines tracked by WaitGroup.
func (a *Application) startBackgroundJobs(ctx context.Context) {
	if interval := a.cfg.Catalog.ReloadInterval; interval > 0 {
		a.wg.Go(func() {
			a.periodicReload(ctx, interval)
		})
	}
}

// startHTTPServer starts the HTTP server in a goroutine.
func (a *Application) startHTTPServer() {
	go func() {
		a.logger.WithField("port", a.cfg.Port).Info("Starting HTTP server")
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.WithError(err).Error("HTTP server error")
			sentry.CaptureError(context.Background(), "http_server", err)
		}
	}()
}

// waitForShutdownSignal blocks until SIGINT/SIGTERM is received.
func (a *Application) waitForShutdownSignal() os.Signal {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return <-quit
}

// shutdown stops the HTTP server, waits for in-flight requests and closes
// resources. Call it after background jobs have stopped.
func (a *Application) shutdown() error {
	timeout := a.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = config.GracefulShutdown
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a.logger.Info("Stopping HTTP server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithError(err).Error("HTTP server shutdown error")
	}

	a.logger.Info("Closing resources...")
	a.closeResources(shutdownCtx)

	a.logger.Info("Shutdown complete")
	return nil
}

// closeResources releases everything Initialize opened. It is safe on a
// partially built Application.
func (a *Application) closeResources(ctx context.Context) {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.WithError(err).WithField("component", "database").Error("Component close error")
		}
	}
	if a.chatLimiter != nil {
		a.chatLimiter.Stop()
	}
	if a.chatIPLimiter != nil {
		a.chatIPLimiter.Stop()
	}

	flushCtx, cancel := context.WithTimeout(ctx, config.TelemetryFlush)
	defer cancel()
	if err := logger.Shutdown(flushCtx); err != nil {
		a.logger.WithError(err).Warn("Logger shutdown timed out")
	}
	if sentry.IsEnabled() && !sentry.Flush(config.TelemetryFlush) {
		a.logger.Warn("Sentry flush timed out")
	}
}

// periodicReload rebuilds the catalog every interval until ctx is done.
func (a *Application) periodicReload(ctx context.Context, interval time.Duration) {
	a.logger.WithField("interval", interval.String()).Debug("Catalog reload job started")
	defer a.logger.Debug("Catalog reload job stopped")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.logger.Debug("Catalog reload received shutdown signal")
			return
		case <-ticker.C:
			if _, err := a.reloadCatalog(ctx, "schedule"); err != nil {
				a.logger.WithError(err).Warn("Scheduled catalog reload interrupted")
			}
		}
	}
}
