// Package main provides the gallery data validation tool.
//
// Exit codes: 0 when the set is clean or has only warnings, 1 when hard
// errors (missing id or url, duplicate hash, malformed URL) are present.
package main

import (
	"fmt"
	"os"

	"github.com/yura9011/promptfolio/internal/config"
	"github.com/yura9011/promptfolio/internal/gallery"
	"github.com/yura9011/promptfolio/internal/logger"
	"github.com/yura9011/promptfolio/internal/validation"
)

func main() {
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

	if len(records) == 0 {
		log.Warn("No images found in database")
		return
	}

	log.Info("Validating gallery data", "records", len(records))
	report := validation.New().CheckRecords(records)

	for _, issue := range report.Errors {
		log.Error(issue.Message, "record", issue.Record)
	}
	for _, issue := range report.Warnings {
		log.Warn(issue.Message, "record", issue.Record)
	}

	switch {
	case report.HasErrors():
		log.Error("Validation failed",
			"checked", report.Checked,
			"errors", len(report.Errors),
			"warnings", len(report.Warnings))
		os.Exit(1)
	case len(report.Warnings) > 0:
		log.Warn("Validation passed with warnings",
			"checked", report.Checked,
			"warnings", len(report.Warnings))
	default:
		log.Info("All validations passed", "checked", report.Checked)
	}
}
