package repository

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate applies every embedded migration that is not yet recorded in schema_migrations, in file name order.
func (r *Repository) Migrate() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	query := `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := r.dbpool.ExecContext(ctx, query); err != nil {
		return err
	}

	entries, err := fs.ReadDir(migrationFiles, "migrations")
	if err != nil {
		return err
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	for _, file := range files {
		version := strings.TrimSuffix(file, ".sql")

		var applied bool
		query := `SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`
		if err := r.dbpool.QueryRowContext(ctx, query, version).Scan(&applied); err != nil {
			return err
		}
		if applied {
			continue
		}

		content, err := fs.ReadFile(migrationFiles, "migrations/"+file)
		if err != nil {
			return err
		}

		if err := r.applyMigration(ctx, version, string(content)); err != nil {
			return fmt.Errorf("migration %s failed: %w", version, err)
		}
	}

	return nil
}

func (r *Repository) applyMigration(ctx context.Context, version string, content string) error {
	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, content); err != nil {
		return err
	}

	query := `INSERT INTO schema_migrations (version) VALUES ($1)`
	if _, err := tx.ExecContext(ctx, query, version); err != nil {
		return err
	}

	return tx.Commit()
}
