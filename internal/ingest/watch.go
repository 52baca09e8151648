package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultSettleDelay is how long a changed file must stay quiet before a
// batch run is triggered. Image drops are often multi-file copies, so the
// delay also coalesces a whole drop into one run.
const DefaultSettleDelay = 2 * time.Second

// Watcher runs the pipeline whenever new images land in the source
// directory.
type Watcher struct {
	pipeline    *Pipeline
	sourceDir   string
	settleDelay time.Duration
	logger      *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher over sourceDir.
func NewWatcher(pipeline *Pipeline, sourceDir string, settleDelay time.Duration, logger *slog.Logger) *Watcher {
	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}
	return &Watcher{
		pipeline:    pipeline,
		sourceDir:   sourceDir,
		settleDelay: settleDelay,
		logger:      logger,
	}
}

// Watch blocks until ctx is cancelled, ingesting on every settled change.
// An initial batch runs immediately so files already present are picked up.
func (w *Watcher) Watch(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(w.sourceDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.sourceDir, err)
	}
	w.logger.Info("watching for new images", "dir", w.sourceDir)

	runs := make(chan struct{}, 1)
	w.scheduleRun(runs, 0)

	for {
		select {
		case <-ctx.Done():
			w.cancelPending()
			return ctx.Err()

		case <-runs:
			if _, err := w.pipeline.Run(ctx, w.sourceDir); err != nil && ctx.Err() == nil {
				w.logger.Error("watch batch failed", "error", err)
			}

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("file event", "op", event.Op.String(), "file", filepath.Base(event.Name))
			w.scheduleRun(runs, w.settleDelay)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watcher error", "error", err)
		}
	}
}

// relevant filters events down to supported images appearing or changing.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		return false
	}
	return SupportedImage(name)
}

// scheduleRun arms (or re-arms) the settle timer, so runs fire only after
// the directory has been quiet for the full delay.
func (w *Watcher) scheduleRun(runs chan<- struct{}, delay time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(delay, func() {
		select {
		case runs <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) cancelPending() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
