package gallery

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yura9011/promptfolio/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestStoreLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "images.json"), "", testLogger())

	records, err := store.Load()
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("missing file should load as empty set, got %d records", len(records))
	}
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(filepath.Join(dir, "images.json"), "", testLogger())

	in := []domain.ImageRecord{
		{
			ID:        "img-1",
			Hash:      "abc",
			URL:       "images/img-001.png",
			Prompt:    "a prompt",
			Model:     "Midjourney",
			Category:  domain.CategoryAnime,
			Tags:      []string{"fox", "snow"},
			Settings:  domain.Settings{Steps: domain.ParseFlexInt("30"), Seed: "42"},
			CreatedAt: "2026-01-02T03:04:05Z",
		},
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0].ID != "img-1" || out[0].Settings.Steps.Int != 30 || out[0].Settings.Seed != "42" {
		t.Errorf("round-trip mismatch: %+v", out[0])
	}
}

func TestStoreSaveBacksUpPrevious(t *testing.T) {
	dir := t.TempDir()
	backups := filepath.Join(dir, "backup")
	store := NewStore(filepath.Join(dir, "images.json"), backups, testLogger())

	if err := store.Save([]domain.ImageRecord{{ID: "img-1"}}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.Save([]domain.ImageRecord{{ID: "img-1"}, {ID: "img-2"}}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	entries, err := os.ReadDir(backups)
	if err != nil {
		t.Fatalf("read backup dir: %v", err)
	}
	found := false
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "images.json.backup-") {
			found = true
		}
	}
	if !found {
		t.Error("expected a timestamped backup after rewrite")
	}
}

func TestStoreSaveNilIsEmptyArray(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "images.json")
	store := NewStore(path, "", testLogger())

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save(nil): %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("nil set should persist as empty array, got %s", data)
	}
}
