package hosting

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func writePNG(t *testing.T, path string) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLocalUpload(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "source.png")
	writePNG(t, src)

	store, err := NewLocal(filepath.Join(root, "images"), testLogger())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	res, err := store.Upload(context.Background(), src, 7)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if res.URL != "images/img-007.png" {
		t.Errorf("URL = %q, want images/img-007.png", res.URL)
	}
	if res.Thumbnail != "images/thumbs/img-007.jpg" {
		t.Errorf("Thumbnail = %q, want images/thumbs/img-007.jpg", res.Thumbnail)
	}

	if _, err := os.Stat(filepath.Join(root, "images", "img-007.png")); err != nil {
		t.Errorf("stored image missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "images", "thumbs", "img-007.jpg")); err != nil {
		t.Errorf("thumbnail missing: %v", err)
	}
}

func TestLocalUploadCanceledContext(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "source.png")
	writePNG(t, src)

	store, err := NewLocal(filepath.Join(root, "images"), testLogger())
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Upload(ctx, src, 1); err == nil {
		t.Error("expected error from canceled context")
	}
}

func TestNewLocalEmptyDir(t *testing.T) {
	if _, err := NewLocal("", testLogger()); err == nil {
		t.Error("expected error for empty directory")
	}
}
