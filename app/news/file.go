package news

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"catalogbot/core/logger"

	"log/slog"
)

// FileStore reads news items from a JSON array file on every Load.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by the given JSON file.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the news file. An absent file is normal and yields an empty
// list silently; any other failure is logged and also yields an empty list.
func (s *FileStore) Load(ctx context.Context) []Item {
	if s.Path == "" {
		return nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.News.Warn("news file read failed",
				slog.String("event", "load"),
				slog.String("source", "file"),
				slog.String("path", s.Path),
				slog.String("err", err.Error()),
			)
		}
		return nil
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		logger.News.Warn("news file parse failed",
			slog.String("event", "load"),
			slog.String("source", "file"),
			slog.String("path", s.Path),
			slog.String("err", err.Error()),
		)
		return nil
	}
	return dropUntitled(items)
}

// dropUntitled filters out entries without a title; they cannot be rendered.
func dropUntitled(items []Item) []Item {
	out := items[:0]
	for _, it := range items {
		if it.Title == "" {
			continue
		}
		out = append(out, it)
	}
	return out
}
