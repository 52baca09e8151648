package images

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG writes a small solid-color PNG and returns its path.
func writeTestPNG(t *testing.T, dir string, w, h int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test png: %v", err)
	}

	path := filepath.Join(dir, "test.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write test png: %v", err)
	}
	return path
}

func TestNeedsCompression(t *testing.T) {
	dir := t.TempDir()

	small := filepath.Join(dir, "small.bin")
	if err := os.WriteFile(small, make([]byte, 1024), 0o644); err != nil {
		t.Fatal(err)
	}
	big := filepath.Join(dir, "big.bin")
	if err := os.WriteFile(big, make([]byte, MaxUncompressedBytes+1), 0o644); err != nil {
		t.Fatal(err)
	}

	if got, err := NeedsCompression(small); err != nil || got {
		t.Errorf("NeedsCompression(small) = %v, %v; want false, nil", got, err)
	}
	if got, err := NeedsCompression(big); err != nil || !got {
		t.Errorf("NeedsCompression(big) = %v, %v; want true, nil", got, err)
	}
	if _, err := NeedsCompression(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCompress(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, 200, 150)
	dst := filepath.Join(dir, "out.jpg")

	stats, err := Compress(src, dst)
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	if stats.CompressedSize <= 0 {
		t.Error("compressed output is empty")
	}
	if stats.OriginalSize-stats.CompressedSize != stats.SavedBytes {
		t.Errorf("inconsistent stats: %+v", stats)
	}

	// Output must decode as an image again.
	if _, err := decode(dst); err != nil {
		t.Errorf("compressed output does not decode: %v", err)
	}
}

func TestThumbnail(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, 400, 200)
	dst := filepath.Join(dir, "thumb.jpg")

	if err := Thumbnail(src, dst, 100); err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	img, err := decode(dst)
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	if img.Bounds().Dx() != 100 || img.Bounds().Dy() != 100 {
		t.Errorf("thumbnail is %dx%d, want 100x100", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestComputeBlurHash(t *testing.T) {
	dir := t.TempDir()
	src := writeTestPNG(t, dir, 128, 96)

	hash, err := ComputeBlurHash(src)
	if err != nil {
		t.Fatalf("ComputeBlurHash: %v", err)
	}
	if hash == "" {
		t.Error("expected non-empty blurhash")
	}

	again, err := ComputeBlurHash(src)
	if err != nil {
		t.Fatalf("ComputeBlurHash: %v", err)
	}
	if hash != again {
		t.Error("blurhash should be deterministic for the same file")
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}
	for _, tt := range tests {
		if got := FormatFileSize(tt.bytes); got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.bytes, got, tt.want)
		}
	}
}
