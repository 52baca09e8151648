// Package gallery manages the persisted gallery record set: a single JSON
// array of image records and variant groups that the front-end reads
// directly.
package gallery

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yura9011/promptfolio/internal/domain"
)

// Store reads and rewrites the gallery data file. The pipeline is the only
// writer; updates happen exclusively by full-set rewrite.
type Store struct {
	path      string
	backupDir string
	logger    *slog.Logger
}

// NewStore creates a store for the given data file. Backups of the previous
// set are written to backupDir before every rewrite.
func NewStore(path, backupDir string, logger *slog.Logger) *Store {
	return &Store{
		path:      path,
		backupDir: backupDir,
		logger:    logger,
	}
}

// Path returns the data file location.
func (s *Store) Path() string { return s.path }

// Load reads the full record set. A missing file is an empty set, not an
// error.
func (s *Store) Load() ([]domain.ImageRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read data file: %w", err)
	}

	var records []domain.ImageRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse data file %s: %w", s.path, err)
	}
	return records, nil
}

// Save rewrites the full record set atomically: backup the previous file,
// write to a temp file, then rename into place.
func (s *Store) Save(records []domain.ImageRecord) error {
	if records == nil {
		records = []domain.ImageRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record set: %w", err)
	}

	if backup, err := s.Backup(); err != nil {
		s.logger.Warn("failed to back up data file", "error", err)
	} else if backup != "" {
		s.logger.Debug("backed up data file", "backup", backup)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}

	s.logger.Info("saved record set", "path", s.path, "records", len(records))
	return nil
}

// Backup copies the current data file aside with a timestamped name. Returns
// the backup path, or empty when there is nothing to back up.
func (s *Store) Backup() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	dir := s.backupDir
	if dir == "" {
		dir = filepath.Dir(s.path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup directory: %w", err)
	}

	stamp := strings.ReplaceAll(time.Now().UTC().Format(time.RFC3339), ":", "-")
	backup := filepath.Join(dir, filepath.Base(s.path)+".backup-"+stamp)
	if err := os.WriteFile(backup, data, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	return backup, nil
}

// FindByHash returns the record whose hash matches digest, flattening variant
// group members into the comparison. For a group member the group record is
// returned. Linear scan; the set is small.
func FindByHash(records []domain.ImageRecord, digest string) (*domain.ImageRecord, bool) {
	if digest == "" {
		return nil, false
	}
	for i := range records {
		if records[i].Hash == digest {
			return &records[i], true
		}
		for _, v := range records[i].Variants {
			if v.Hash == digest {
				return &records[i], true
			}
		}
	}
	return nil, false
}
