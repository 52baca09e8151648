// Package di provides dependency injection configuration for the gallery server.
package di

import (
	"errors"
	"net/http"

	"github.com/samber/do/v2"

	"github.com/yura9011/promptfolio/internal/di/providers"
	"github.com/yura9011/promptfolio/internal/logger"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)

	// Gallery layer
	do.Provide(injector, providers.ProvideStore)
	do.Provide(injector, providers.ProvideUploader)
	do.Provide(injector, providers.ProvidePipeline)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap starts the services that need to run at startup.
func Bootstrap(injector do.Injector) error {
	log := do.MustInvoke[*logger.Logger](injector)

	server, err := do.Invoke[*providers.HTTPServerHandle](injector)
	if err != nil {
		return err
	}

	go func() {
		log.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server failed", "error", err)
		}
	}()

	return nil
}
