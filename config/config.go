// Package config loads cmdfolder settings from ~/.cmdfolder/config.toml.
//
// Every key is optional. Environment variables override the file:
//   - CMDFOLDER_HOME: data directory, also where config.toml is looked up
//   - CMDFOLDER_BACKEND: "sqlite", "bolt" or "json"
//   - CMDFOLDER_LOG_LEVEL: "debug", "info", "warn" or "error"
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DirName          = ".cmdfolder"
	FileName         = "config.toml"
	DefaultNamespace = "terminal-commands"
)

type Config struct {
	DataDir      string `toml:"data_dir"`
	Backend      string `toml:"backend"`
	Namespace    string `toml:"namespace"`
	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"`
	ToastSeconds int    `toml:"toast_seconds"`
}

// Default returns the settings used when no file is present. LogFile is
// left empty and resolved against the final data directory by LoadFile.
func Default(dataDir string) Config {
	return Config{
		DataDir:      dataDir,
		Backend:      "sqlite",
		Namespace:    DefaultNamespace,
		LogLevel:     "info",
		ToastSeconds: 2,
	}
}

// HomeDir returns the data directory: $CMDFOLDER_HOME or ~/.cmdfolder.
func HomeDir() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("CMDFOLDER_HOME")); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Load reads config.toml from the data directory, applies environment
// overrides and validates the result.
func Load() (Config, error) {
	dir, err := HomeDir()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(filepath.Join(dir, FileName), dir)
}

// LoadFile is Load with an explicit file path and default data directory.
// A missing file is not an error.
func LoadFile(path, dataDir string) (Config, error) {
	cfg := Default(dataDir)

	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if v := strings.TrimSpace(os.Getenv("CMDFOLDER_HOME")); v != "" {
		cfg.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("CMDFOLDER_BACKEND")); v != "" {
		cfg.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("CMDFOLDER_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.DataDir, "cmdfolder.log")
	}
	cfg.LogFile = expandHome(cfg.LogFile)
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Backend {
	case "sqlite", "bolt", "json":
	default:
		return fmt.Errorf("invalid backend %q: want sqlite, bolt or json", c.Backend)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.ToastSeconds <= 0 {
		return fmt.Errorf("invalid toast_seconds %d: must be positive", c.ToastSeconds)
	}
	if c.DataDir == "" {
		return errors.New("data_dir is empty")
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log_level %q", c.LogLevel)
}

func (c Config) ToastDuration() time.Duration {
	return time.Duration(c.ToastSeconds) * time.Second
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
