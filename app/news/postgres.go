package news

import (
	"context"

	"catalogbot/core/logger"

	"github.com/jmoiron/sqlx"
	"log/slog"
)

// PostgresStore loads news items from the news_items table ordered by position.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore returns a store backed by the given database handle.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Load queries news items. Query failures are logged and degrade to an
// empty list so the news screen still renders.
func (s *PostgresStore) Load(ctx context.Context) []Item {
	var items []Item
	err := s.db.SelectContext(ctx, &items,
		`SELECT title,
		        COALESCE(date, '')    AS date,
		        COALESCE(summary, '') AS summary,
		        COALESCE(url, '')     AS url
		 FROM news_items
		 ORDER BY position, id`)
	if err != nil {
		logger.News.Warn("news query failed",
			slog.String("event", "load"),
			slog.String("source", "postgres"),
			slog.String("err", err.Error()),
		)
		return nil
	}
	return dropUntitled(items)
}
