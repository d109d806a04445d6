// Package config provides centralized timeout constants for the application.
//
// The chat engine itself has no timeouts; every limit here applies at the
// HTTP edge or to background work around it.
package config

import "time"

// HTTP server timeouts
const (
	// HTTPRead is the server read timeout. Chat payloads are small JSON bodies.
	HTTPRead = 10 * time.Second

	// HTTPWrite is the server write timeout. It must exceed CatalogReload so a
	// slow /reload-data can still respond.
	HTTPWrite = 65 * time.Second

	// HTTPIdle is the idle timeout for keep-alive connections.
	HTTPIdle = 120 * time.Second
)

// Request timeouts
const (
	// ChatRequest bounds one /chat call, mostly the attachment lookup and
	// URL presigning.
	ChatRequest = 10 * time.Second

	// CatalogReload bounds one catalog rebuild, including the row query.
	CatalogReload = 60 * time.Second

	// SeedDownload bounds fetching a remote seed at startup.
	SeedDownload = 2 * time.Minute
)

// Background job intervals
const (
	// RateLimiterCleanupInterval is how often idle chat sessions are dropped
	// from the per-session limiter.
	RateLimiterCleanupInterval = 5 * time.Minute
)

// Graceful shutdown
const (
	// GracefulShutdown is the fallback timeout for graceful server shutdown
	// when none is configured.
	GracefulShutdown = 30 * time.Second

	// TelemetryFlush bounds flushing Sentry events and shipped logs on exit.
	TelemetryFlush = 5 * time.Second
)
