// Package main provides the batch ingestion tool for the gallery.
//
// Usage:
//
//	ingest [flags] [source-dir]
//
// The source directory defaults to GALLERY_SOURCE_DIR. With --watch the
// tool keeps running and ingests images as they are dropped in.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yura9011/promptfolio/internal/config"
	"github.com/yura9011/promptfolio/internal/gallery"
	"github.com/yura9011/promptfolio/internal/hosting"
	"github.com/yura9011/promptfolio/internal/ingest"
	"github.com/yura9011/promptfolio/internal/logger"
	"github.com/yura9011/promptfolio/internal/media/images"
)

var (
	dryRun      = flag.Bool("dry-run", false, "Hash and parse but do not copy, upload, or save")
	watch       = flag.Bool("watch", false, "Keep running and ingest new images as they appear")
	settleDelay = flag.Duration("settle", ingest.DefaultSettleDelay, "Quiet period before a watched batch runs")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		Environment: cfg.App.Environment,
	})

	sourceDir := cfg.Gallery.SourceDir
	if flag.NArg() > 0 {
		sourceDir = flag.Arg(0)
	}

	store := gallery.NewStore(cfg.Gallery.DataFile, cfg.Gallery.BackupDir, log.Logger)
	uploader, err := hosting.NewLocal(cfg.Gallery.ImagesDir, log.Logger)
	if err != nil {
		log.Fatal("Failed to set up image hosting", "error", err)
	}

	pipeline := ingest.NewPipeline(store, uploader, ingest.Options{
		BackupDir: cfg.Gallery.BackupDir,
		DryRun:    *dryRun,
	}, log.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *watch {
		watcher := ingest.NewWatcher(pipeline, sourceDir, *settleDelay, log.Logger)
		if err := watcher.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal("Watch failed", "error", err)
		}
		return
	}

	start := time.Now()
	stats, err := pipeline.Run(ctx, sourceDir)
	if err != nil {
		log.Fatal("Ingestion failed", "error", err)
	}

	log.Info("Ingestion finished",
		"found", stats.Found,
		"uploaded", stats.Uploaded,
		"duplicates", stats.Duplicates,
		"compressed", stats.Compressed,
		"errors", stats.Errors,
		"saved", images.FormatFileSize(stats.SavedBytes),
		"elapsed", time.Since(start).Round(time.Millisecond))

	if stats.Errors > 0 {
		os.Exit(1)
	}
}
