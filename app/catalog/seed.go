package catalog

import (
	"context"
	"fmt"
	"os"

	"catalogbot/core/logger"

	"github.com/jmoiron/sqlx"
	"log/slog"
)

// SeedFromFile imports the products JSON file into the brands and products
// tables when they are empty. Existing data is never touched.
func SeedFromFile(ctx context.Context, db *sqlx.DB, path string) error {
	if path == "" {
		return nil
	}

	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM brands`); err != nil {
		return fmt.Errorf("catalog: seed precheck: %w", err)
	}
	if count > 0 {
		logger.Catalog.Debug("seed skipped, brands table not empty",
			slog.String("event", "seed"),
			slog.Int("brands", count),
		)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("catalog: seed read %s: %w", path, err)
	}
	snap, err := Parse(data)
	if err != nil {
		return fmt.Errorf("catalog: seed parse %s: %w", path, err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: seed begin: %w", err)
	}
	defer tx.Rollback()

	for bi, b := range snap.All() {
		var brandID int64
		err := tx.GetContext(ctx, &brandID,
			`INSERT INTO brands (name, position) VALUES ($1, $2) RETURNING id`,
			b.Name, bi)
		if err != nil {
			return fmt.Errorf("catalog: seed brand %q: %w", b.Name, err)
		}
		for pi, p := range b.Products {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO products (brand_id, name, instruction, position) VALUES ($1, $2, $3, $4)`,
				brandID, p.Name, p.Instruction, pi)
			if err != nil {
				return fmt.Errorf("catalog: seed product %q of %q: %w", p.Name, b.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: seed commit: %w", err)
	}

	nb, np := snap.Counts()
	logger.Catalog.Info("catalog seeded from file",
		slog.String("event", "seed"),
		slog.String("path", path),
		slog.Int("brands", nb),
		slog.Int("products", np),
	)
	return nil
}
