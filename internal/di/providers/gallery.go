package providers

import (
	"context"
	"net/http"
	"time"

	"github.com/samber/do/v2"

	"github.com/yura9011/promptfolio/internal/api"
	"github.com/yura9011/promptfolio/internal/config"
	"github.com/yura9011/promptfolio/internal/gallery"
	"github.com/yura9011/promptfolio/internal/hosting"
	"github.com/yura9011/promptfolio/internal/ingest"
	"github.com/yura9011/promptfolio/internal/logger"
)

const shutdownTimeout = 10 * time.Second

// ProvideStore provides the gallery record store.
func ProvideStore(i do.Injector) (*gallery.Store, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return gallery.NewStore(cfg.Gallery.DataFile, cfg.Gallery.BackupDir, log.Logger), nil
}

// ProvideUploader provides the local blob-store uploader.
func ProvideUploader(i do.Injector) (hosting.Uploader, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	return hosting.NewLocal(cfg.Gallery.ImagesDir, log.Logger)
}

// ProvidePipeline provides the ingestion pipeline.
func ProvidePipeline(i do.Injector) (*ingest.Pipeline, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	store := do.MustInvoke[*gallery.Store](i)
	uploader := do.MustInvoke[hosting.Uploader](i)

	return ingest.NewPipeline(store, uploader, ingest.Options{
		BackupDir: cfg.Gallery.BackupDir,
	}, log.Logger), nil
}

// HTTPServerHandle wraps http.Server with Shutdownable.
type HTTPServerHandle struct {
	*http.Server
}

// Shutdown implements do.Shutdownable.
func (h *HTTPServerHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.Server.Shutdown(ctx)
}

// ProvideHTTPServer provides the HTTP server.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)
	store := do.MustInvoke[*gallery.Store](i)

	server := api.NewServer(store, cfg.Gallery.ImagesDir, log.Logger)

	return &HTTPServerHandle{
		Server: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      server,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
	}, nil
}
