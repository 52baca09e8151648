// Package images provides hashing, compression, thumbnailing, and BlurHash
// placeholders for gallery images.
package images

import (
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// Images above this size are re-encoded before upload.
const MaxUncompressedBytes = 2 * 1024 * 1024

// CompressionQuality is the JPEG quality used when re-encoding.
const CompressionQuality = 85

// CompressionStats reports the outcome of one re-encode.
type CompressionStats struct {
	OriginalSize   int64
	CompressedSize int64
	SavedBytes     int64
	SavedPercent   float64
	OutputPath     string
}

// NeedsCompression reports whether the file at path exceeds the size
// threshold.
func NeedsCompression(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat image: %w", err)
	}
	return info.Size() > MaxUncompressedBytes, nil
}

// Compress re-encodes the image at inputPath into a size-reduced format at
// outputPath (format chosen by extension, normally .jpg) and reports byte
// counts.
func Compress(inputPath, outputPath string) (*CompressionStats, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("stat image: %w", err)
	}

	img, err := decode(inputPath)
	if err != nil {
		return nil, err
	}

	if err := imaging.Save(img, outputPath, imaging.JPEGQuality(CompressionQuality)); err != nil {
		return nil, fmt.Errorf("encode compressed image: %w", err)
	}

	out, err := os.Stat(outputPath)
	if err != nil {
		return nil, fmt.Errorf("stat compressed image: %w", err)
	}

	stats := &CompressionStats{
		OriginalSize:   info.Size(),
		CompressedSize: out.Size(),
		SavedBytes:     info.Size() - out.Size(),
		OutputPath:     outputPath,
	}
	if info.Size() > 0 {
		stats.SavedPercent = float64(stats.SavedBytes) / float64(info.Size()) * 100
	}
	return stats, nil
}

// Thumbnail writes a size×size center-cropped preview of the image at
// srcPath to dstPath.
func Thumbnail(srcPath, dstPath string, size int) error {
	img, err := decode(srcPath)
	if err != nil {
		return err
	}
	thumb := imaging.Fill(img, size, size, imaging.Center, imaging.Lanczos)
	if err := imaging.Save(thumb, dstPath, imaging.JPEGQuality(CompressionQuality)); err != nil {
		return fmt.Errorf("encode thumbnail: %w", err)
	}
	return nil
}

// decode opens an image in any registered format, including WebP.
func decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer file.Close() //nolint:errcheck // Read-only handle.

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}

// FormatFileSize renders a byte count for batch summaries ("2.5 MB").
func FormatFileSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}
