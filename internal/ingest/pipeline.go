package ingest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/yura9011/promptfolio/internal/domain"
	apperrors "github.com/yura9011/promptfolio/internal/errors"
	"github.com/yura9011/promptfolio/internal/gallery"
	"github.com/yura9011/promptfolio/internal/hosting"
	"github.com/yura9011/promptfolio/internal/id"
	"github.com/yura9011/promptfolio/internal/media/images"
	"github.com/yura9011/promptfolio/internal/metadata"
	"github.com/yura9011/promptfolio/internal/tags"
)

// Stats summarizes one ingestion batch.
type Stats struct {
	Found      int   `json:"found"`
	Uploaded   int   `json:"uploaded"`
	Duplicates int   `json:"duplicates"`
	Compressed int   `json:"compressed"`
	Errors     int   `json:"errors"`
	SavedBytes int64 `json:"saved_bytes"`
}

// Options configures a pipeline run.
type Options struct {
	// BackupDir receives a copy of every original before it is touched.
	BackupDir string
	// DryRun hashes and parses but never copies, uploads, or saves.
	DryRun bool
}

// Pipeline processes a batch of source images into gallery records.
type Pipeline struct {
	store    *gallery.Store
	uploader hosting.Uploader
	opts     Options
	logger   *slog.Logger
}

// NewPipeline wires a pipeline against a record store and an uploader.
func NewPipeline(store *gallery.Store, uploader hosting.Uploader, opts Options, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		store:    store,
		uploader: uploader,
		opts:     opts,
		logger:   logger,
	}
}

// Run ingests every supported image in sourceDir. Per-image failures are
// counted and logged but do not abort the batch; the persisted set is
// rewritten once at the end with new records merged and regrouped.
func (p *Pipeline) Run(ctx context.Context, sourceDir string) (*Stats, error) {
	log := p.logger.With("run", uuid.NewString()[:8], "source", sourceDir)

	files, err := ScanImages(sourceDir)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Found: len(files)}
	if len(files) == 0 {
		log.Warn("no images found in source directory")
		return stats, nil
	}
	log.Info("scan complete", "images", len(files))

	existing, err := p.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load gallery data: %w", err)
	}

	var batch []domain.ImageRecord
	seq := len(existing)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		rec, err := p.processImage(ctx, log, file, existing, batch, seq+1, stats)
		switch {
		case apperrors.Is(err, apperrors.ErrAlreadyExists):
			log.Warn("duplicate image skipped", "file", filepath.Base(file))
			stats.Duplicates++
		case err != nil:
			log.Error("failed to process image", "file", filepath.Base(file), "error", err)
			stats.Errors++
		default:
			batch = append(batch, *rec)
			seq++
			stats.Uploaded++
		}
	}

	if p.opts.DryRun {
		log.Info("dry run, gallery data not written",
			"would_upload", stats.Uploaded, "duplicates", stats.Duplicates)
		return stats, nil
	}

	if len(batch) > 0 {
		merged := gallery.Regroup(existing, batch)
		if err := p.store.Save(merged); err != nil {
			return stats, fmt.Errorf("failed to save gallery data: %w", err)
		}
		log.Info("gallery data saved", "records", len(merged))
	}

	log.Info("batch complete",
		"uploaded", stats.Uploaded,
		"duplicates", stats.Duplicates,
		"compressed", stats.Compressed,
		"errors", stats.Errors,
		"saved", images.FormatFileSize(stats.SavedBytes))

	return stats, nil
}

// processImage runs one image through the full chain. A duplicate is
// reported as ErrAlreadyExists so the caller can count it separately.
func (p *Pipeline) processImage(ctx context.Context, log *slog.Logger, path string, existing, batch []domain.ImageRecord, seq int, stats *Stats) (*domain.ImageRecord, error) {
	filename := filepath.Base(path)
	log.Info("processing image", "file", filename)

	digest, err := images.HashFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to hash image: %w", err)
	}

	if dup, found := gallery.FindByHash(existing, digest); found {
		return nil, apperrors.AlreadyExistsf("already uploaded as %s", dup.ID)
	}
	if dup, found := gallery.FindByHash(batch, digest); found {
		return nil, apperrors.AlreadyExistsf("duplicate of %s in this batch", dup.ID)
	}

	meta := p.readSidecar(log, path)

	if p.opts.DryRun {
		return p.buildRecord(digest, filename, hosting.Result{}, meta), nil
	}

	if p.opts.BackupDir != "" {
		if err := backupOriginal(path, p.opts.BackupDir); err != nil {
			return nil, fmt.Errorf("failed to back up original: %w", err)
		}
	}

	uploadPath := path
	needs, err := images.NeedsCompression(path)
	if err != nil {
		return nil, err
	}
	if needs {
		compressed, cstats, err := compressToTemp(path)
		if err != nil {
			return nil, fmt.Errorf("failed to compress image: %w", err)
		}
		defer os.Remove(compressed)
		log.Info("image compressed",
			"file", filename,
			"original", images.FormatFileSize(cstats.OriginalSize),
			"compressed", images.FormatFileSize(cstats.CompressedSize))
		stats.Compressed++
		stats.SavedBytes += cstats.SavedBytes
		uploadPath = compressed
	}

	result, err := p.uploader.Upload(ctx, uploadPath, seq)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	rec := p.buildRecord(digest, filepath.Base(result.URL), result, meta)

	if blur, err := images.ComputeBlurHash(uploadPath); err != nil {
		log.Warn("failed to compute blurhash", "file", filename, "error", err)
	} else {
		rec.BlurHash = blur
	}

	log.Info("image added", "id", rec.ID, "category", rec.Category, "model", rec.Model)
	return rec, nil
}

// readSidecar parses the .txt file next to the image, falling back to
// defaults when it is absent.
func (p *Pipeline) readSidecar(log *slog.Logger, imagePath string) metadata.Result {
	content, err := os.ReadFile(SidecarPath(imagePath))
	if err != nil {
		log.Warn("no sidecar file, using defaults", "file", filepath.Base(imagePath))
		return metadata.Defaults()
	}
	return metadata.Parse(string(content))
}

func (p *Pipeline) buildRecord(digest, filename string, hosted hosting.Result, meta metadata.Result) *domain.ImageRecord {
	return &domain.ImageRecord{
		ID:           id.MustGenerate(id.ImagePrefix),
		Hash:         digest,
		URL:          hosted.URL,
		Thumbnail:    hosted.Thumbnail,
		Filename:     filename,
		Prompt:       meta.Prompt,
		Model:        meta.Model,
		Category:     meta.Category,
		Achievement:  meta.Achievement,
		Tags:         tags.Extract(meta.Prompt),
		Settings:     meta.Settings,
		Notes:        meta.Notes,
		VariantGroup: meta.VariantGroup,
		VariantIndex: meta.VariantIndex,
		CreatedAt:    domain.NowTimestamp(),
	}
}

// backupOriginal copies the source file under its own name into backupDir.
func backupOriginal(path, backupDir string) error {
	if err := os.MkdirAll(backupDir, 0o750); err != nil {
		return err
	}

	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(backupDir, filepath.Base(path)))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// compressToTemp writes a compressed copy of path to a temp file and
// returns its location.
func compressToTemp(path string) (string, *images.CompressionStats, error) {
	tmp, err := os.CreateTemp("", "gallery-*.jpg")
	if err != nil {
		return "", nil, err
	}
	tmpPath := tmp.Name()
	tmp.Close()

	stats, err := images.Compress(path, tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		return "", nil, err
	}
	return tmpPath, stats, nil
}
