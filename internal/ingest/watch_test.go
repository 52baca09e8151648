package ingest_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yura9011/promptfolio/internal/ingest"
)

func TestWatcher_IngestsDroppedFile(t *testing.T) {
	e := newEnv(t, false)

	watcher := ingest.NewWatcher(e.pipeline, e.source, 100*time.Millisecond, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(ctx)
	}()

	// Give the watcher a moment to register the directory.
	time.Sleep(200 * time.Millisecond)

	writePNG(t, filepath.Join(e.source, "dropped.png"), 21)

	require.Eventually(t, func() bool {
		records, err := e.store.Load()
		return err == nil && len(records) == 1
	}, 10*time.Second, 100*time.Millisecond, "dropped image should be ingested")

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	e := newEnv(t, false)

	watcher := ingest.NewWatcher(e.pipeline, e.source, time.Second, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watcher.Watch(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_MissingDirFails(t *testing.T) {
	e := newEnv(t, false)

	watcher := ingest.NewWatcher(e.pipeline, filepath.Join(e.source, "missing"), time.Second, discardLogger())

	err := watcher.Watch(context.Background())
	assert.Error(t, err)
}
