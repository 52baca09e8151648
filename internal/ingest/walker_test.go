package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanImages(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{
		"b.png", "a.jpg", "c.JPEG", "d.webp",
		"notes.txt", "archive.zip", ".hidden.png",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "deep.png"), []byte("x"), 0o644))

	images, err := ScanImages(dir)
	require.NoError(t, err)

	want := []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.png"),
		filepath.Join(dir, "c.JPEG"),
		filepath.Join(dir, "d.webp"),
	}
	assert.Equal(t, want, images)
}

func TestScanImages_MissingDir(t *testing.T) {
	_, err := ScanImages(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestSupportedImage(t *testing.T) {
	assert.True(t, SupportedImage("photo.png"))
	assert.True(t, SupportedImage("photo.WEBP"))
	assert.False(t, SupportedImage("photo.gif"))
	assert.False(t, SupportedImage("photo"))
}

func TestSidecarPath(t *testing.T) {
	assert.Equal(t, "/src/castle.txt", SidecarPath("/src/castle.png"))
	assert.Equal(t, "uploads/a.b.txt", SidecarPath("uploads/a.b.jpeg"))
}
