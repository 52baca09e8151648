// Package ingest turns a directory of raw images plus .txt sidecars into
// normalized gallery records: hash, duplicate check, backup, optional
// compression, hosting upload, metadata parse, tag extraction, grouping.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// supportedExtensions are the image formats accepted for ingestion.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// SupportedImage reports whether path has an accepted image extension.
func SupportedImage(path string) bool {
	return supportedExtensions[strings.ToLower(filepath.Ext(path))]
}

// ScanImages lists the image files directly inside dir, sorted by name.
// Hidden files and subdirectories are skipped.
func ScanImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory: %w", err)
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if !SupportedImage(name) {
			continue
		}
		images = append(images, filepath.Join(dir, name))
	}

	sort.Strings(images)
	return images, nil
}

// SidecarPath returns the metadata .txt path for an image file.
func SidecarPath(imagePath string) string {
	ext := filepath.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + ".txt"
}
