package hosting

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yura9011/promptfolio/internal/media/images"
)

// ThumbnailSize is the edge length of generated preview images.
const ThumbnailSize = 300

// Local stores images in a directory served as static files. URLs are
// relative paths (images/img-001.png) so the gallery works from any root.
type Local struct {
	dir    string
	logger *slog.Logger
}

// NewLocal creates the storage directories if needed.
func NewLocal(dir string, logger *slog.Logger) (*Local, error) {
	if dir == "" {
		return nil, fmt.Errorf("images directory cannot be empty")
	}
	if err := os.MkdirAll(filepath.Join(dir, "thumbs"), 0o755); err != nil {
		return nil, fmt.Errorf("create images directory: %w", err)
	}
	return &Local{dir: dir, logger: logger}, nil
}

// Upload copies the image into the storage directory under a sequential
// name and renders a thumbnail beside it. A failed thumbnail falls back to
// the full image URL rather than failing the upload.
func (l *Local) Upload(ctx context.Context, srcPath string, seq int) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	name := fmt.Sprintf("img-%03d%s", seq, strings.ToLower(filepath.Ext(srcPath)))
	dst := filepath.Join(l.dir, name)
	if err := copyFile(srcPath, dst); err != nil {
		return Result{}, fmt.Errorf("store image: %w", err)
	}

	base := filepath.Base(l.dir)
	res := Result{
		URL:       path.Join(base, name),
		Thumbnail: path.Join(base, name),
	}

	thumbName := fmt.Sprintf("img-%03d.jpg", seq)
	thumbPath := filepath.Join(l.dir, "thumbs", thumbName)
	if err := images.Thumbnail(dst, thumbPath, ThumbnailSize); err != nil {
		l.logger.Warn("thumbnail generation failed, using full image", "image", name, "error", err)
	} else {
		res.Thumbnail = path.Join(base, "thumbs", thumbName)
	}

	return res, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close() //nolint:errcheck // Read-only handle.

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close() //nolint:errcheck,gosec // Best effort before returning the copy error.
		return err
	}
	return out.Close()
}
