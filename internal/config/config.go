// Package config provides application configuration management with support for environment variables and .env files.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Gallery GalleryConfig
	Server  ServerConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// GalleryConfig holds gallery storage configuration.
type GalleryConfig struct {
	// DataFile is the JSON gallery data file.
	DataFile string
	// ImagesDir is where hosted images and thumbnails live.
	ImagesDir string
	// BackupDir receives timestamped copies of the data file and originals.
	BackupDir string
	// SourceDir is the default directory scanned for new uploads.
	SourceDir string
}

// ServerConfig holds gallery API server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// Load reads configuration with precedence:
// 1. Environment variables.
// 2. .env file.
// 3. Default values (lowest priority).
//
// Per-run options like dry-run and watch mode stay on each command's flags.
func Load() (*Config, error) {
	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(getConfigValue("ENV_FILE", ".env"))

	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue("ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue("LOG_LEVEL", "info"),
		},
		Gallery: GalleryConfig{
			DataFile:  getConfigValue("GALLERY_DATA_FILE", "data/images-data.json"),
			ImagesDir: getConfigValue("GALLERY_IMAGES_DIR", "images"),
			BackupDir: getConfigValue("GALLERY_BACKUP_DIR", "backup"),
			SourceDir: getConfigValue("GALLERY_SOURCE_DIR", "uploads"),
		},
		Server: ServerConfig{
			Port: getConfigValue("SERVER_PORT", "8080"),
		},
	}

	// Parse server timeouts.
	readTimeoutStr := getConfigValue("SERVER_READ_TIMEOUT", "15s")
	readTimeout, err := time.ParseDuration(readTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid read timeout %q: %w", readTimeoutStr, err)
	}
	cfg.Server.ReadTimeout = readTimeout

	writeTimeoutStr := getConfigValue("SERVER_WRITE_TIMEOUT", "15s")
	writeTimeout, err := time.ParseDuration(writeTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid write timeout %q: %w", writeTimeoutStr, err)
	}
	cfg.Server.WriteTimeout = writeTimeout

	idleTimeoutStr := getConfigValue("SERVER_IDLE_TIMEOUT", "60s")
	idleTimeout, err := time.ParseDuration(idleTimeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid idle timeout %q: %w", idleTimeoutStr, err)
	}
	cfg.Server.IdleTimeout = idleTimeout

	// Expand gallery paths.
	if err := cfg.expandGalleryPaths(); err != nil {
		return nil, fmt.Errorf("invalid gallery path: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Gallery.DataFile == "" {
		return errors.New("gallery data file cannot be empty after expansion")
	}
	if c.Gallery.ImagesDir == "" {
		return errors.New("gallery images dir cannot be empty after expansion")
	}

	return nil
}

// expandGalleryPaths expands ~ and makes all gallery paths absolute.
func (c *Config) expandGalleryPaths() error {
	for _, p := range []*string{
		&c.Gallery.DataFile,
		&c.Gallery.ImagesDir,
		&c.Gallery.BackupDir,
		&c.Gallery.SourceDir,
	} {
		expanded, err := expandPath(*p, "")
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// getConfigValue returns the first non-empty value from env var or default.
func getConfigValue(envKey, defaultValue string) string {
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}
	return defaultValue
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
