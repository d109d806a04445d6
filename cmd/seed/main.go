// Package main provides a CLI that imports professor seed documents into the
// chatbot database. The server picks the data up on its next catalog reload.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/findmyprof/findmyprof-go/internal/config"
	"github.com/findmyprof/findmyprof-go/internal/logger"
	"github.com/findmyprof/findmyprof-go/internal/storage"
)

// CLI flags
var (
	filesFlag  = flag.String("files", "", "Comma-separated list of seed files (.json or .json.zst)")
	resetFlag  = flag.Bool("reset", false, "Delete all catalog data before importing")
	dryRunFlag = flag.Bool("dry-run", false, "Decode and validate the seed files without writing")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel).WithModule("seed")
	log.Info("Starting seed tool")

	files := parseFiles(*filesFlag)
	if len(files) == 0 {
		log.Info("No seed files specified, exiting")
		fmt.Println("⏭️  No seed files given (use -files), skipping")
		return
	}

	seeds := make([]*storage.Seed, 0, len(files))
	for _, path := range files {
		seed, err := storage.ReadSeedFile(path)
		if err != nil {
			log.WithError(err).WithField("file", path).Error("Failed to read seed file")
			fmt.Fprintf(os.Stderr, "\n❌ %s: %v\n", path, err)
			os.Exit(1)
		}
		seeds = append(seeds, seed)
	}

	if *dryRunFlag {
		total := countSeeds(seeds)
		fmt.Printf("\n✅ Dry run OK: %s in %d file(s)\n", total, len(files))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.SeedDownload)
	defer cancel()

	db, err := storage.New(ctx, cfg.SQLitePath())
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()
	log.WithField("path", cfg.SQLitePath()).Info("Database connected")

	if *resetFlag {
		log.Warn("Clearing catalog data...")
		if err := db.ClearCatalog(ctx); err != nil {
			log.WithError(err).Error("Failed to clear catalog")
			os.Exit(1)
		}
		log.Info("Catalog cleared")
	}

	startTime := time.Now()
	var total storage.ImportStats
	for i, seed := range seeds {
		stats, err := db.ImportSeed(ctx, seed)
		if err != nil {
			log.WithError(err).WithField("file", files[i]).Error("Seed import failed")
			fmt.Fprintf(os.Stderr, "\n❌ Import failed for %s: %v\n", files[i], err)
			os.Exit(1)
		}
		total = addStats(total, stats)
		log.WithField("file", files[i]).WithField("professors", stats.Professors).Info("Seed file imported")
	}
	duration := time.Since(startTime)

	log.WithField("duration", duration).Info("Seed import complete")
	fmt.Printf("\n✅ Seed complete: %s imported\n", formatStats(total))
	fmt.Printf("Total time: %v\n", duration.Round(time.Millisecond))
}

// parseFiles splits a comma-separated flag value, dropping blanks.
func parseFiles(files string) []string {
	parts := strings.Split(files, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		file := strings.TrimSpace(part)
		if file != "" {
			result = append(result, file)
		}
	}
	return result
}

func addStats(a, b storage.ImportStats) storage.ImportStats {
	return storage.ImportStats{
		Professors:  a.Professors + b.Professors,
		Subjects:    a.Subjects + b.Subjects,
		Schedules:   a.Schedules + b.Schedules,
		Attachments: a.Attachments + b.Attachments,
	}
}

// countSeeds tallies records without touching a database.
func countSeeds(seeds []*storage.Seed) string {
	var total storage.ImportStats
	for _, s := range seeds {
		total = addStats(total, storage.ImportStats{
			Professors:  len(s.Professors),
			Subjects:    len(s.Subjects),
			Schedules:   len(s.Schedules),
			Attachments: len(s.Attachments),
		})
	}
	return formatStats(total)
}

func formatStats(s storage.ImportStats) string {
	return fmt.Sprintf("%d professors, %d subjects, %d schedules, %d attachments",
		s.Professors, s.Subjects, s.Schedules, s.Attachments)
}
