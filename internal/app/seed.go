package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/findmyprof/findmyprof-go/internal/config"
	"github.com/findmyprof/findmyprof-go/internal/logger"
	"github.com/findmyprof/findmyprof-go/internal/r2client"
	"github.com/findmyprof/findmyprof-go/internal/sentry"
	"github.com/findmyprof/findmyprof-go/internal/storage"
)

// seedDownloader fetches a remote seed object. *r2client.Client satisfies it.
type seedDownloader interface {
	Download(ctx context.Context, key string) (io.ReadCloser, string, error)
}

// importSeed loads the configured seed into db before the first catalog
// build. A local seed that cannot be read or imported is fatal because the
// operator asked for it explicitly. A remote seed failure is logged and
// startup continues with whatever the database already holds.
func importSeed(ctx context.Context, cfg config.CatalogConfig, db *storage.DB, remote seedDownloader, log *logger.Logger) error {
	switch {
	case cfg.SeedFile != "":
		seed, err := storage.ReadSeedFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		return applySeed(ctx, db, seed, cfg.SeedFile, log)

	case cfg.SeedKey != "":
		if remote == nil {
			return fmt.Errorf("remote seed %q configured without an object store", cfg.SeedKey)
		}
		if err := importRemoteSeed(ctx, db, remote, cfg.SeedKey, log); err != nil {
			log.WithError(err).WithField("key", cfg.SeedKey).Warn("Remote seed import failed, continuing with existing data")
			sentry.CaptureError(ctx, "seed", err)
		}
		return nil
	}
	return nil
}

func importRemoteSeed(ctx context.Context, db *storage.DB, remote seedDownloader, key string, log *logger.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, config.SeedDownload)
	defer cancel()

	body, etag, err := remote.Download(ctx, key)
	if err != nil {
		if errors.Is(err, r2client.ErrNotFound) {
			return fmt.Errorf("seed object %q not found", key)
		}
		return err
	}
	defer func() { _ = body.Close() }()

	seed, err := storage.DecodeSeed(body, key)
	if err != nil {
		return err
	}
	log.WithField("key", key).WithField("etag", etag).Debug("Remote seed downloaded")
	return applySeed(ctx, db, seed, key, log)
}

func applySeed(ctx context.Context, db *storage.DB, seed *storage.Seed, source string, log *logger.Logger) error {
	start := time.Now()
	stats, err := db.ImportSeed(ctx, seed)
	if err != nil {
		return err
	}
	log.WithFields(map[string]any{
		"source":      source,
		"professors":  stats.Professors,
		"subjects":    stats.Subjects,
		"schedules":   stats.Schedules,
		"attachments": stats.Attachments,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Seed imported")
	return nil
}
