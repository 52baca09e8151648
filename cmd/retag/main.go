// Package main regenerates tags for records that have none.
//
// Useful after importing legacy data that predates tag extraction. With
// --all, every record's tags are rebuilt from its prompt.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yura9011/promptfolio/internal/config"
	"github.com/yura9011/promptfolio/internal/domain"
	"github.com/yura9011/promptfolio/internal/gallery"
	"github.com/yura9011/promptfolio/internal/logger"
	"github.com/yura9011/promptfolio/internal/tags"
)

var retagAll = flag.Bool("all", false, "Rebuild tags for every record, not just untagged ones")

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

	store := gallery.NewStore(cfg.Gallery.DataFile, cfg.Gallery.BackupDir, log.Logger)
	records, err := store.Load()
	if err != nil {
		log.Fatal("Failed to load gallery data", "error", err)
	}

	updated := 0
	for i := range records {
		rec := &records[i]
		if !*retagAll && len(rec.Tags) > 0 {
			continue
		}
		if rec.Prompt == "" || rec.Prompt == domain.DefaultPrompt {
			continue
		}
		rec.Tags = tags.Extract(rec.Prompt)
		updated++
		log.Info("Tags rebuilt", "id", rec.ID, "tags", rec.Tags)
	}

	if updated == 0 {
		log.Info("Nothing to retag", "records", len(records))
		return
	}

	if err := store.Save(records); err != nil {
		log.Fatal("Failed to save gallery data", "error", err)
	}
	log.Info("Retag complete", "records", len(records), "updated", updated)
}
