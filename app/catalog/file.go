package catalog

import (
	"context"
	"os"
	"time"

	"catalogbot/core/logger"

	"log/slog"
)

// FileStore reads the catalog from a JSON file on every Load, so edits to
// the file are picked up without a restart.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the given JSON file.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads and parses the products file into a fresh snapshot.
func (s *FileStore) Load(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	data, err := os.ReadFile(s.Path)
	if err != nil {
		logger.Catalog.Error("products file read failed",
			slog.String("event", "load"),
			slog.String("source", "file"),
			slog.String("path", s.Path),
			slog.String("err", err.Error()),
		)
		return nil, &LoadError{Source: s.Path, Err: err}
	}
	snap, err := Parse(data)
	if err != nil {
		logger.Catalog.Error("products file parse failed",
			slog.String("event", "load"),
			slog.String("source", "file"),
			slog.String("path", s.Path),
			slog.String("err", err.Error()),
		)
		return nil, &LoadError{Source: s.Path, Err: err}
	}
	brands, products := snap.Counts()
	logger.Catalog.Debug("catalog loaded",
		slog.String("event", "load"),
		slog.String("source", "file"),
		slog.String("path", s.Path),
		slog.Int("brands", brands),
		slog.Int("products", products),
		slog.Duration("duration", logger.Took(start)),
	)
	return snap, nil
}
