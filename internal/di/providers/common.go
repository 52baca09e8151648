// Package providers contains dependency injection providers for the gallery server.
package providers

import (
	"github.com/samber/do/v2"

	"github.com/yura9011/promptfolio/internal/config"
	"github.com/yura9011/promptfolio/internal/logger"
)

// ProvideConfig provides the application configuration.
func ProvideConfig(i do.Injector) (*config.Config, error) {
	return config.Load()
}

// ProvideLogger provides the structured logger.
func ProvideLogger(i do.Injector) (*logger.Logger, error) {
	cfg := do.MustInvoke[*config.Config](i)

	log := logger.New(logger.Config{
		Level:       logger.ParseLevel(cfg.Logger.Level),
		AddSource:   cfg.App.Environment == "development",
		Environment: cfg.App.Environment,
	})

	log.Info("Starting gallery server",
		"environment", cfg.App.Environment,
		"log_level", cfg.Logger.Level,
		"data_file", cfg.Gallery.DataFile,
		"images_dir", cfg.Gallery.ImagesDir,
	)

	return log, nil
}
