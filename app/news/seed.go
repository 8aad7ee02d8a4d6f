package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"catalogbot/core/logger"

	"github.com/jmoiron/sqlx"
	"log/slog"
)

// SeedFromFile imports the news JSON file into news_items when the table is
// empty. A missing file is not an error.
func SeedFromFile(ctx context.Context, db *sqlx.DB, path string) error {
	if path == "" {
		return nil
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM news_items`); err != nil {
		return fmt.Errorf("news: seed precheck: %w", err)
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("news: seed read %s: %w", path, err)
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("news: seed parse %s: %w", path, err)
	}
	items = dropUntitled(items)
	if len(items) == 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("news: seed begin: %w", err)
	}
	defer tx.Rollback()

	for i, it := range items {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO news_items (title, date, summary, url, position) VALUES ($1, $2, $3, $4, $5)`,
			it.Title, it.Date, it.Summary, it.URL, i)
		if err != nil {
			return fmt.Errorf("news: seed item %q: %w", it.Title, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("news: seed commit: %w", err)
	}

	logger.News.Info("news seeded from file",
		slog.String("event", "seed"),
		slog.String("path", path),
		slog.Int("items", len(items)),
	)
	return nil
}
