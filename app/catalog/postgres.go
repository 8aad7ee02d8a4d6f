package catalog

import (
	"context"
	"time"

	"catalogbot/core/logger"

	"github.com/jmoiron/sqlx"
	"log/slog"
)

// PostgresStore loads the catalog from the brands and products tables.
// Ordering follows the position columns so the menu layout is stable.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore returns a store backed by the given database handle.
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

type brandRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type productRow struct {
	BrandID     int64  `db:"brand_id"`
	Name        string `db:"name"`
	Instruction string `db:"instruction"`
}

// Load queries brands and products and assembles a fresh snapshot.
func (s *PostgresStore) Load(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	var brandRows []brandRow
	if err := s.db.SelectContext(ctx, &brandRows,
		`SELECT id, name FROM brands ORDER BY position, id`); err != nil {
		logger.Catalog.Error("brands query failed",
			slog.String("event", "load"),
			slog.String("source", "postgres"),
			slog.String("err", err.Error()),
		)
		return nil, &LoadError{Source: "postgres", Err: err}
	}

	var productRows []productRow
	if err := s.db.SelectContext(ctx, &productRows,
		`SELECT brand_id, name, instruction FROM products ORDER BY position, id`); err != nil {
		logger.Catalog.Error("products query failed",
			slog.String("event", "load"),
			slog.String("source", "postgres"),
			slog.String("err", err.Error()),
		)
		return nil, &LoadError{Source: "postgres", Err: err}
	}

	byID := make(map[int64]int, len(brandRows))
	brands := make([]Brand, len(brandRows))
	for i, b := range brandRows {
		byID[b.ID] = i
		brands[i] = Brand{Name: b.Name}
	}
	for _, p := range productRows {
		i, ok := byID[p.BrandID]
		if !ok {
			continue
		}
		brands[i].Products = append(brands[i].Products, Product{
			Name:        p.Name,
			Instruction: p.Instruction,
		})
	}

	snap := NewSnapshot(brands)
	nb, np := snap.Counts()
	logger.Catalog.Debug("catalog loaded",
		slog.String("event", "load"),
		slog.String("source", "postgres"),
		slog.Int("brands", nb),
		slog.Int("products", np),
		slog.Duration("duration", logger.Took(start)),
	)
	return snap, nil
}
