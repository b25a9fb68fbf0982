package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"io"
	"path/filepath"
	"strings"

	"cmdfolder/catalog"
	"cmdfolder/config"
	"cmdfolder/db"
	"cmdfolder/model"
)

// session is everything a command needs: settings, a logger writing to the
// log file, and an initialized catalog over the configured store.
type session struct {
	cfg     config.Config
	log     *slog.Logger
	logFile *os.File
	store   db.Store
	catalog *catalog.Catalog
}

func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level}))

	store, err := db.Open(cfg.Backend, cfg.DataDir, cfg.Namespace)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	c := catalog.New(store, catalog.WithLogger(logger))
	if c.Initialize() {
		logger.Info("using default catalog", "backend", cfg.Backend, "dir", cfg.DataDir)
	}

	return &session{
		cfg:     cfg,
		log:     logger,
		logFile: logFile,
		store:   store,
		catalog: c,
	}, nil
}

func (s *session) Close() {
	if err := s.store.Close(); err != nil {
		s.log.Warn("close store", "error", err)
	}
	s.logFile.Close()
}

// resolveCategory resolves a -c flag value. When the value is neither an id
// nor a category name the fuzzy pick is reported to stderr.
func (s *session) resolveCategory(stderr io.Writer, ref string) (model.Category, error) {
	cat, err := s.catalog.ResolveCategory(ref)
	if err != nil {
		return model.Category{}, err
	}
	if cat.ID != ref && !strings.EqualFold(cat.Name, strings.TrimSpace(ref)) {
		fmt.Fprintf(stderr, "Using category %q for %q\n", cat.Name, ref)
	}
	return cat, nil
}

// warnUnsaved prints the pending save error, if any, to stderr.
func (s *session) warnUnsaved() {
	if err := s.catalog.SaveErr(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: changes not saved: %v\n", err)
	}
}
